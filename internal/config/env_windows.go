//go:build windows

package config

// Unix variable names used in shared configs, resolved to their Windows names.
var windowsEnv = map[string]string{
	"HOSTNAME": "COMPUTERNAME",
	"HOME":     "USERPROFILE",
	"USER":     "USERNAME",
	"TMPDIR":   "TEMP",
}

func mapEnvKey(key string) string {
	if alias, ok := windowsEnv[key]; ok {
		return alias
	}
	return key
}
