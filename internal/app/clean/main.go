package clean

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/heptiolabs/healthcheck"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/mongo"
)

var appName = "Transcription Data Clean Service"

var rootCmd = &cobra.Command{
	Use:   "cleanService",
	Short: appName,
	Long:  `Service to delete expired transcription data and uploaded files`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8080)
	cmdapp.Config.SetDefault("cleaner.expire", 48*time.Hour)
	cmdapp.Config.SetDefault("cleaner.runEvery", time.Hour)
	cmdapp.Config.SetDefault("fileStorage.path", "/data/uploads_audios/")
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	data := &ServiceData{}
	data.health = healthcheck.NewHandler()
	data.Port = cmdapp.Config.GetInt("port")

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()
	data.health.AddLivenessCheck("mongo", healthcheck.Async(mongoSessionProvider.Healthy, 10*time.Second))

	data.cleaner, err = newCleanerImpl(mongoSessionProvider, cmdapp.Config.GetString("fileStorage.path"))
	cmdapp.CheckOrPanic(err, "Can't init cleaner")

	err = initMetrics(data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	tData := &timerServiceData{}
	tData.cleaner = data.cleaner
	tData.runEvery = cmdapp.Config.GetDuration("cleaner.runEvery")
	tData.qChan = make(chan struct{})
	tData.workWaitChan = make(chan struct{})
	tData.idsProvider, err = mongo.NewCleanIDsProvider(mongoSessionProvider,
		cmdapp.Config.GetDuration("cleaner.expire"))
	cmdapp.CheckOrPanic(err, "Can't init IDs provider")

	err = startCleanTimer(tData)
	cmdapp.CheckOrPanic(err, "Can't start timer")
	defer close(tData.qChan)

	err = StartWebServer(data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}
