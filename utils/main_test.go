package utils

import (
	"os"
	"testing"

	"fkemo/config"
	"fkemo/global"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "fkemo",
		},
	}
	os.Exit(m.Run())
}
