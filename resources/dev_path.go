//go:build !release
// +build !release

package resources

const configDir = ".spillestation"

func resourcePath() (string, error) {
	return configDir, nil
}
