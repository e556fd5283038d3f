package configuration

import (
	"github.com/fulldump/records/model"
)

func Default() Configuration {
	return Configuration{
		Separator: model.DefaultSeparator,
		Pretty:    false,
		Verbose:   false,
	}
}
