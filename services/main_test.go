package services

import (
	"os"
	"testing"

	"github.com/kyuhunjo/backun-farm-backend/config"
)

func TestMain(m *testing.M) {
	// config.Warning 등이 nil 로거로 패닉하지 않도록 초기화한다
	dir, err := os.MkdirTemp("", "services-test-logs")
	if err != nil {
		panic(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	if err := config.SetupLogger(); err != nil {
		panic(err)
	}
	if err := os.Chdir(cwd); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
