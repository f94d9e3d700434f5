package resources

import (
	"os"
	"path/filepath"
)

// the directory resources are stored in when the portable.txt file is present
const portablePath = "spillestation_UserData"

// the portable.txt file must be in the same directory as the program binary
func checkPortable() bool {
	ex, err := os.Executable()
	if err != nil {
		return false
	}

	_, err = os.Stat(filepath.Join(filepath.Dir(ex), "portable.txt"))
	return err == nil
}
