package check

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/gcs"
)

var appName = "Permission Check Service"

var rootCmd = &cobra.Command{
	Use:   "permCheckService",
	Short: appName,
	Long:  `Checks Google Cloud credentials and bucket permissions used by the transcription services`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
}

//Execute starts the probe
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := gcs.NewObjectStore(ctx)
	cmdapp.CheckOrPanic(err, "Can't init object store")
	defer store.Close()

	res, err := Run(ctx, store)
	cmdapp.CheckOrPanic(err, "Bucket probe failed")

	for _, p := range res.Granted {
		cmdapp.Log.Infof("Granted: %s", p)
	}
	for _, p := range res.Missing {
		cmdapp.Log.Warnf("Missing: %s", p)
	}
	if len(res.Missing) == 0 {
		cmdapp.Log.Info("All required bucket permissions are granted")
	}

	cmdapp.Log.Infof("Objects in bucket: %d", len(res.Objects))
	for _, o := range res.Objects {
		cmdapp.Log.Infof("Object: %s", o)
	}
	cmdapp.Log.Info("Done")
}
