package env

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/marijncv/pants/internal/pkg/filesystem"
	"github.com/marijncv/pants/internal/pkg/log"
	"github.com/marijncv/pants/internal/pkg/utils/errors"
)

// Files returns the env files in the order in which they take precedence.
func Files() []string {
	return []string{".env.local", ".env"}
}

// LoadDotEnv loads envs from ".env" files if they exist. Existing envs take precedence.
func LoadDotEnv(logger log.Logger, osEnvs *Map, fs filesystem.Fs, dirs []string) *Map {
	envs := osEnvs.Clone()

	for _, dir := range dirs {
		for _, file := range Files() {
			// Check if exists
			path := filesystem.Join(dir, file)
			info, err := fs.Stat(path)
			switch {
			case err == nil && info.IsDir():
				// Expected file, found dir
				continue
			case err != nil && os.IsNotExist(err):
				// File doesn't exist
				continue
			case err != nil:
				logger.Warnf(`Cannot check if path "%s" exists: %s`, path, err)
				continue
			}

			fileEnvs, err := LoadEnvFile(fs, path)
			if err != nil {
				logger.Warnf(`%s`, err.Error())
				continue
			}
			logger.Infof(`Loaded env file "%s"`, path)

			// Merge ENVs, existing keys take precedence.
			envs.Merge(fileEnvs, false)
		}
	}

	return envs
}

func LoadEnvFile(fs filesystem.Fs, path string) (*Map, error) {
	file, err := fs.ReadFile(filesystem.NewFileDef(path).SetDescription("env file"))
	if err != nil {
		return nil, err
	}

	envs, err := godotenv.Unmarshal(file.Content)
	if err != nil {
		return nil, errors.Errorf(`cannot parse env file "%s": %w`, path, err)
	}

	return FromMap(envs), nil
}
