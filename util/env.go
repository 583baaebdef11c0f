package util

import (
	"errors"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/pkg"
)

func ValidateEnvVariables(cfg *model.Config, l log.Logger) error {
	if cfg == nil {
		return errors.New("reporter config is nil")
	}

	if commons.IsNilOrEmpty(&cfg.RPCURL) {
		err := pkg.ValidateBusinessError(cn.ErrMissingRPCURL, "Config")

		l.Error(err.Error())

		return err
	}

	if commons.IsNilOrEmpty(&cfg.ABIPath) {
		err := "missing contract artifact path"

		l.Error(err)

		return errors.New(err)
	}

	return nil
}
