package calc

import (
	"regexp"
	"strconv"
	"strings"

	"varcalc.dev/pkg/eval/errs"
)

// Variable is one row of the variable table. The value is kept as text and
// may itself be an expression referencing other variables.
type Variable struct {
	ID    int
	Name  string
	Value string
}

// Store is an ordered table of variables, kept in insertion order, which is
// also the order the resolver scans. It is not safe for concurrent use.
type Store struct {
	vars []Variable
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Insert adds a new variable to the table and returns the stored record. The
// name must be an identifier; a blank value is stored as "0". The new
// variable gets an id one above the highest id in the table, or 1 if the
// table is empty.
func (s *Store) Insert(name, value string) (Variable, error) {
	if err := checkName(name); err != nil {
		return Variable{}, err
	}
	v := Variable{ID: s.nextID(), Name: name, Value: orZero(value)}
	s.vars = append(s.vars, v)
	return v, nil
}

func (s *Store) nextID() int {
	max := 0
	for _, v := range s.vars {
		if v.ID > max {
			max = v.ID
		}
	}
	return max + 1
}

// Update replaces the name and value of the variable with the given id,
// preserving its position in the table. Updating an id that is not present
// is a no-op.
func (s *Store) Update(id int, name, value string) error {
	if err := checkName(name); err != nil {
		return err
	}
	for i, v := range s.vars {
		if v.ID == id {
			s.vars[i] = Variable{ID: id, Name: name, Value: orZero(value)}
			break
		}
	}
	return nil
}

// Del removes the variable with the given id. Deleting an id that is not
// present is a no-op.
func (s *Store) Del(id int) {
	for i, v := range s.vars {
		if v.ID == id {
			s.vars = append(s.vars[:i], s.vars[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the table in insertion order. The caller owns
// the returned slice.
func (s *Store) List() []Variable {
	vars := make([]Variable, len(s.vars))
	copy(vars, s.vars)
	return vars
}

var nameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkName(name string) error {
	if !nameRE.MatchString(name) {
		return errs.BadValue{
			What: "variable name", Valid: "identifier",
			Actual: strconv.Quote(name)}
	}
	return nil
}

func orZero(value string) string {
	if strings.TrimSpace(value) == "" {
		return "0"
	}
	return value
}
