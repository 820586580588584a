package logging

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}

// SetupLogging configures the standard logger. With a non-empty logPath,
// output also goes to a rotated file.
func SetupLogging(verbose bool, logPath string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if logPath == "" {
		logrus.SetOutput(os.Stderr)
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Warnf("Cannot create log directory for %s: %v", logPath, err)
		return
	}

	logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
	}))
}

func GetDefaultLogDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "credstore", "logs")
	}
	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "credstore")
	}
	return filepath.Join(home, ".local", "state", "credstore", "logs")
}
