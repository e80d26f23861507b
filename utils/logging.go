package utils

import "github.com/sirupsen/logrus"

var Logger = logrus.New()

// SetVerbose enables debug output on the service logger and the detection packages
func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
	logrus.SetLevel(logrus.DebugLevel)
}
