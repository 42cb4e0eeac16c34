package upload

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"github.com/heptiolabs/healthcheck"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/metrics"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/mongo"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/rabbit"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/saver"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/translator"
)

var appName = "Transcription Upload Service"

var rootCmd = &cobra.Command{
	Use:   "uploadService",
	Short: appName,
	Long:  `HTTP server to upload audio files for transcription and to provide results`,
	Run:   run,
}

func init() {
	cmdapp.InitApplication(rootCmd)
	rootCmd.PersistentFlags().Int32P("port", "", 8000, "Default service port")
	cmdapp.Config.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	cmdapp.Config.SetDefault("port", 8080)
	cmdapp.Config.SetDefault("fileStorage.path", "/data/uploads_audios/")
	cmdapp.Config.SetDefault("fileStorage.maxSize", 100*1024*1024)
}

//Execute starts the server
func Execute() {
	cmdapp.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) {
	cmdapp.Log.Info("Starting " + appName)
	var data ServiceData
	var err error
	data.health = healthcheck.NewHandler()

	fs, err := saver.NewLocalFileSaver(cmdapp.Config.GetString("fileStorage.path"),
		cmdapp.Config.GetInt64("fileStorage.maxSize"))
	cmdapp.CheckOrPanic(err, "Can't init file storage")
	data.FileSaver = fs
	data.health.AddLivenessCheck("fs", fs.HealthyFunc())

	msgChannelProvider, err := rabbit.NewChannelProvider()
	cmdapp.CheckOrPanic(err, "Can't init rabbit channel")
	defer msgChannelProvider.Close()
	data.health.AddLivenessCheck("rabbit", healthcheck.Async(msgChannelProvider.Healthy, 10*time.Second))

	err = initQueues(msgChannelProvider)
	cmdapp.CheckOrPanic(err, "Can't init queues")

	data.MessageSender = rabbit.NewSender(msgChannelProvider)
	data.EventChannelFunc = newEventChannelFunc(msgChannelProvider)

	mongoSessionProvider, err := mongo.NewSessionProvider()
	cmdapp.CheckOrPanic(err, "Can't init mongo")
	defer mongoSessionProvider.Close()
	data.health.AddLivenessCheck("mongo", healthcheck.Async(mongoSessionProvider.Healthy, 10*time.Second))

	data.StatusSaver, err = mongo.NewStatusSaver(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init status saver")
	data.StatusProvider, err = mongo.NewStatusProvider(mongoSessionProvider)
	cmdapp.CheckOrPanic(err, "Can't init status provider")

	googleTranslator, err := translator.NewGoogleTranslator(context.Background())
	cmdapp.CheckOrPanic(err, "Can't init translator")
	defer googleTranslator.Close()
	data.Translator, err = translator.NewGateway(googleTranslator)
	cmdapp.CheckOrPanic(err, "Can't init translation gateway")

	err = initMetrics(&data)
	cmdapp.CheckOrPanic(err, "Can't init metrics")

	data.Port = cmdapp.Config.GetInt("port")

	err = StartWebServer(&data)
	cmdapp.CheckOrPanic(err, "Can't start web server")
}

func initQueues(prv *rabbit.ChannelProvider) error {
	cmdapp.Log.Info("Initializing queues")
	return prv.RunOnChannelWithRetry(func(ch *amqp.Channel) error {
		_, err := rabbit.DeclareQueue(ch, prv.QueueName(messages.Transcribe))
		if err != nil {
			return err
		}
		return rabbit.DeclareExchange(ch, prv.QueueName(messages.StatusChange))
	})
}

func newEventChannelFunc(prv *rabbit.ChannelProvider) eventChannelFunc {
	return func() (<-chan amqp.Delivery, error) {
		ch, err := prv.Channel()
		if err != nil {
			return nil, err
		}
		q, err := ch.QueueDeclare("", false, true, true, false, nil)
		if err != nil {
			return nil, err
		}
		err = ch.QueueBind(q.Name, "", prv.QueueName(messages.StatusChange), false, nil)
		if err != nil {
			return nil, err
		}
		return ch.Consume(q.Name, "", true, false, false, false, nil)
	}
}

func initMetrics(data *ServiceData) error {
	namespace := "upload_service"
	data.metrics.uploadResponseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_request_durations_seconds",
			Help:      "Upload request latency distributions.",
		}, nil)
	err := metrics.Register(data.metrics.uploadResponseDur)
	if err != nil {
		return err
	}
	data.metrics.uploadRequestSize = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "upload_request_size_bytes",
			Help:      "Upload request size in bytes.",
		}, nil)
	err = metrics.Register(data.metrics.uploadRequestSize)
	if err != nil {
		return err
	}
	data.metrics.responseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_durations_seconds",
			Help:      "Request latency distributions.",
		}, nil)
	return metrics.Register(data.metrics.responseDur)
}
