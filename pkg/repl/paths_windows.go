package repl

import "golang.org/x/sys/windows"

func defaultConfigHome() (string, error) { return roamingAppData() }

func defaultStateHome() (string, error) { return localAppData() }

func roamingAppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_RoamingAppData, windows.KF_FLAG_CREATE)
}

func localAppData() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_CREATE)
}
