package process

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	pathKey         = "PATH"
	pathExtKey      = "PATHEXT"
	defaultPathExts = ".com;.exe;.bat;.cmd"
)

// resolveCommand searches a bare command name on the PATH of the environment the process will
// receive. The command is returned unchanged when it contains a separator or when it can not be
// found there, so the launcher's own PATH applies
func resolveCommand(command string, env []string) string {
	if strings.ContainsAny(command, `/\`) {
		return command
	}

	envPath, found := lookupEnv(env, pathKey)
	if !found {
		return command
	}

	for _, dir := range filepath.SplitList(envPath) {
		// relative entries would be evaluated against the child's directory
		if !filepath.IsAbs(dir) {
			continue
		}

		for _, candidate := range candidates(filepath.Join(dir, command), env) {
			if isExecutable(candidate) {
				return candidate
			}
		}
	}

	return command
}

func candidates(path string, env []string) []string {
	if runtime.GOOS != "windows" || len(filepath.Ext(path)) > 0 {
		return []string{path}
	}

	exts, found := lookupEnv(env, pathExtKey)
	if !found || len(exts) == 0 {
		exts = defaultPathExts
	}

	result := make([]string, 0)
	for _, ext := range strings.Split(exts, ";") {
		if len(ext) > 0 {
			result = append(result, path+strings.ToLower(ext))
		}
	}

	return result
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}

	return info.Mode().Perm()&0o111 != 0
}

func lookupEnv(env []string, key string) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		name, value, found := strings.Cut(env[i], "=")
		if !found {
			continue
		}
		if name == key || (runtime.GOOS == "windows" && strings.EqualFold(name, key)) {
			return value, true
		}
	}

	return "", false
}
