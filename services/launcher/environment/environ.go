package environment

import (
	"os"
	"strings"
)

const pathKey = "PATH"

// environ is a KEY=VALUE list as used by os/exec
type environ []string

func (env environ) get(key string) (string, bool) {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			return env[i][len(prefix):], true
		}
	}

	return "", false
}

func (env environ) unset(key string) environ {
	prefix := key + "="
	result := make(environ, 0, len(env))
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			result = append(result, entry)
		}
	}

	return result
}

func (env environ) set(key string, value string) environ {
	return append(env.unset(key), key+"="+value)
}

func (env environ) prependPath(dir string) environ {
	current, found := env.get(pathKey)
	if !found || len(current) == 0 {
		return env.set(pathKey, dir)
	}

	return env.set(pathKey, dir+string(os.PathListSeparator)+current)
}
