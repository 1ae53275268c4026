package main

import (
	"os"

	"github.com/MKhiriev/go-env-json/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(run(os.Args[1:], info, os.Stdout, os.Stderr))
}
