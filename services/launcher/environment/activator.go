package environment

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/iulianpascalau/xrd-launcher/commonGo"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	// KindNone inherits the launcher's environment
	KindNone = "none"
	// KindVirtualEnv activates a python virtual environment rooted at Path
	KindVirtualEnv = "virtualenv"
	// KindConda activates a named conda environment
	KindConda = "conda"

	condaBaseEnvName = "base"
)

var log = logger.GetOrCreate("environment")

type environmentActivator struct {
	baseEnv environ
}

// NewEnvironmentActivator creates an activator working on top of the provided KEY=VALUE list
func NewEnvironmentActivator(baseEnv []string) *environmentActivator {
	return &environmentActivator{
		baseEnv: append(environ(nil), baseEnv...),
	}
}

// Activate returns the environment the entry point should run with. Activation problems are logged
// and the inherited environment is returned instead
func (ea *environmentActivator) Activate(cfg config.EnvironmentConfig) []string {
	env, err := ea.activate(cfg)
	if err != nil {
		log.Warn("environment activation failed, continuing with the inherited environment",
			"kind", cfg.Kind, "name", cfg.Name, "path", cfg.Path, "error", err)
		return append([]string(nil), ea.baseEnv...)
	}

	log.Debug("environment activated", "kind", cfg.Kind, "name", cfg.Name, "path", cfg.Path)

	return env
}

func (ea *environmentActivator) activate(cfg config.EnvironmentConfig) ([]string, error) {
	env := append(environ(nil), ea.baseEnv...)

	var err error
	switch cfg.Kind {
	case "", KindNone:
	case KindVirtualEnv:
		env, err = activateVirtualEnv(env, cfg)
	case KindConda:
		env, err = activateConda(env, cfg)
	default:
		err = fmt.Errorf("%w: %s", errUnknownKind, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if len(cfg.EnvFile) == 0 {
		return env, nil
	}

	values, err := commonGo.ReadEnvFile(cfg.EnvFile)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = env.set(key, values[key])
	}

	return env, nil
}

func activateVirtualEnv(env environ, cfg config.EnvironmentConfig) (environ, error) {
	if len(cfg.Path) == 0 {
		return nil, errMissingPath
	}

	prefix, err := existingDirectory(cfg.Path)
	if err != nil {
		return nil, err
	}

	env = env.set("VIRTUAL_ENV", prefix)
	env = env.unset("PYTHONHOME")

	return env.prependPath(binDirectory(prefix)), nil
}

func activateConda(env environ, cfg config.EnvironmentConfig) (environ, error) {
	if len(cfg.Name) == 0 {
		return nil, errMissingName
	}

	root := cfg.Root
	if len(root) == 0 {
		root = condaRoot(env)
	}
	if len(root) == 0 {
		return nil, errCondaRootNotFound
	}

	prefix := root
	if cfg.Name != condaBaseEnvName {
		prefix = filepath.Join(root, "envs", cfg.Name)
	}

	prefix, err := existingDirectory(prefix)
	if err != nil {
		return nil, err
	}

	env = env.set("CONDA_PREFIX", prefix)
	env = env.set("CONDA_DEFAULT_ENV", cfg.Name)

	return env.prependPath(binDirectory(prefix)), nil
}

func condaRoot(env environ) string {
	root, found := env.get("CONDA_ROOT")
	if found && len(root) > 0 {
		return root
	}

	condaExe, found := env.get("CONDA_EXE")
	if found && len(condaExe) > 0 {
		// <root>/bin/conda
		return filepath.Dir(filepath.Dir(condaExe))
	}

	return ""
}

func binDirectory(prefix string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(prefix, "Scripts")
	}

	return filepath.Join(prefix, "bin")
}

func existingDirectory(dir string) (string, error) {
	dir = expandHome(dir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", errPrefixNotFound, dir)
	}

	return filepath.Abs(dir)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (ea *environmentActivator) IsInterfaceNil() bool {
	return ea == nil
}
