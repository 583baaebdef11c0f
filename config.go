package vtc

import (
	"errors"
	"io/fs"

	"github.com/LerianStudio/lib-commons/commons"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/joho/godotenv"
)

// LoadFromEnv builds the Config from the process environment. A .env file in
// the working directory is loaded first when it exists; variables already set
// in the environment take precedence over it.
func LoadFromEnv() (model.Config, error) {
	if err := godotenv.Load(cn.DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return model.Config{}, err
	}

	var cfg model.Config
	if err := commons.SetConfigFromEnvVars(&cfg); err != nil {
		return model.Config{}, err
	}

	if cfg.ABIPath == "" {
		cfg.ABIPath = cn.DefaultABIPath
	}

	return cfg, nil
}
