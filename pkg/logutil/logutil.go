// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. The logger writes to the output set
// by the last call to SetOutput or SetOutputFile, and defaults to discarding
// all output.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// given writer.
func SetOutput(newOut io.Writer) {
	closeOutFile()
	outFile = nil
	out = newOut
	applyOutput()
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. Calling this function with an empty name is equivalent to
// calling SetOutput(io.Discard).
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	closeOutFile()
	outFile = file
	out = file
	applyOutput()
	return nil
}

func applyOutput() {
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
	}
}
