// Command mailadmin-report prints the dominios known to the API with their areas and correos.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/itchan-dev/mailadmin/frontend/internal/apiclient"
	"github.com/itchan-dev/mailadmin/shared/logger"
)

func main() {
	var baseURL string
	var timeout time.Duration
	flag.StringVar(&baseURL, "api_url", "", "base url of the API, defaults to $API_URL or "+apiclient.DefaultBaseURL)
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "timeout for the whole report")
	flag.Parse()

	logger.Initialize("info", false)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := apiclient.New(baseURL)
	if err := writeReport(ctx, client, os.Stdout); err != nil {
		logger.Log.Error("failed to build report", "api_url", client.BaseURL, "error", err)
		os.Exit(1)
	}
}
