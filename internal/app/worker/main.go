package worker

import (
	"context"
	"sync"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/audio"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/gcs"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/mongo"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/rabbit"
	sp "github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/speech"
)

var appName = "Transcription Worker Service"

var rootCmd = &cobra.Command{
	Use:   "workerService",
	Short: appName,
	Long:  `Worker service listens for transcription tasks from the queue and runs them against Google Speech`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)

	var reapLock sync.RWMutex
	reapChildren(&reapLock)

	ctx := context.Background()
	data := ServiceData{}

	msgChannelProvider, err := rabbit.NewChannelProvider()
	cmdapp.CheckOrPanic(err, "Can't init rabbit provider")
	defer msgChannelProvider.Close()

	ch, err := msgChannelProvider.Channel()
	cmdapp.CheckOrPanic(err, "Can't open channel")
	err = ch.Qos(1, 0, false)
	cmdapp.CheckOrPanic(err, "Can't set Qos")

	data.WorkCh, err = rabbit.NewChannel(ch, msgChannelProvider.QueueName(messages.Transcribe))
	cmdapp.CheckOrPanic(err, "Can't listen "+messages.Transcribe+" queue")

	data.Publisher = rabbit.NewPublisher(msgChannelProvider)

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo provider")
	defer mongoSessionProvider.Close()

	data.StatusSaver, err = mongo.NewStatusSaver(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init status saver")
	data.ResultSaver, err = mongo.NewResultSaver(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init result saver")

	normalizer, err := audio.NewNormalizer()
	cmdapp.CheckOrPanic(err, "Can't init normalizer")
	normalizer.UseCommandLock(&reapLock)
	data.Normalizer = normalizer

	objectStore, err := gcs.NewObjectStore(ctx)
	cmdapp.CheckOrPanic(err, "Can't init object store")
	defer objectStore.Close()

	speechClient, err := newSpeechClient(ctx)
	cmdapp.CheckOrPanic(err, "Can't init speech client")
	defer speechClient.Close()

	data.Recognizer, err = sp.NewRouter(speechClient, objectStore, normalizer.SampleRate())
	cmdapp.CheckOrPanic(err, "Can't init recognizer")

	data.JobTimeout = cmdapp.Config.GetDuration("worker.jobTimeout")

	fc, err := StartWorkerService(&data)
	cmdapp.CheckOrPanic(err, "Can't start service")
	<-fc
	cmdapp.Log.Infof("Exiting service")
}

func newSpeechClient(ctx context.Context) (*speech.Client, error) {
	var opts []option.ClientOption
	credsFile := cmdapp.Config.GetString("speech.credentialsFile")
	if credsFile == "" {
		credsFile = cmdapp.Config.GetString("gcs.credentialsFile")
	}
	if credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Can't create speech client")
	}
	return client, nil
}
