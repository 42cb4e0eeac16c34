package worker

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/status"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/transcription"
)

//Normalizer converts an uploaded audio file to the canonical format
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) (string, error)
}

//Recognizer transcribes a normalized audio file
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string, profile string) ([]transcription.Entry, error)
}

//ResultSaver saves the transcription result
type ResultSaver interface {
	Save(ID string, result []transcription.Entry) error
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Normalizer  Normalizer
	Recognizer  Recognizer
	StatusSaver status.Saver
	ResultSaver ResultSaver
	Publisher   messages.Publisher
	JobTimeout  time.Duration
	RemoveFunc  func(name string) error

	WorkCh <-chan amqp.Delivery
}

//StartWorkerService starts the event queue listener service to listen for transcription tasks
// return channel to track the finish event
func StartWorkerService(data *ServiceData) (<-chan bool, error) {
	if data.Normalizer == nil {
		return nil, errors.New("No normalizer")
	}
	if data.Recognizer == nil {
		return nil, errors.New("No recognizer")
	}
	if data.StatusSaver == nil {
		return nil, errors.New("No status saver")
	}
	if data.ResultSaver == nil {
		return nil, errors.New("No result saver")
	}
	if data.Publisher == nil {
		return nil, errors.New("No publisher")
	}
	if data.WorkCh == nil {
		return nil, errors.New("No work channel")
	}
	if data.JobTimeout <= 0 {
		data.JobTimeout = 55 * time.Minute
	}
	if data.RemoveFunc == nil {
		data.RemoveFunc = os.Remove
	}
	cmdapp.Log.Infof("Starting listen for messages")

	fc := make(chan bool)

	go listenQueue(data, fc)
	return fc, nil
}

func listenQueue(data *ServiceData, fc chan<- bool) {
	for d := range data.WorkCh {
		processMsg(&d, data)
		err := d.Ack(false)
		if err != nil {
			cmdapp.Log.Error("Can't ack message", err)
		}
	}
	cmdapp.Log.Infof("Stopped listening queue")
	fc <- true
}

func processMsg(d *amqp.Delivery, data *ServiceData) {
	var message messages.TranscriptionMessage
	if err := json.Unmarshal(d.Body, &message); err != nil {
		cmdapp.Log.Error(errors.Wrap(err, "Can't unmarshal message "+string(d.Body)))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), data.JobTimeout)
	defer cancel()

	err := work(ctx, data, &message)
	if err != nil {
		cmdapp.Log.Error(err)
		err = data.StatusSaver.SaveError(message.ID, err.Error())
		if err != nil {
			cmdapp.Log.Error(errors.Wrap(err, "Can't save error for "+message.ID))
		}
	}
	cmdapp.Log.Infof("Msg processed")

	err = data.Publisher.Publish(message.ID, messages.StatusChange)
	if err != nil {
		cmdapp.Log.Error(errors.Wrap(err, "Can't publish status change"))
	}
}

//work is main method to process the transcription task
func work(ctx context.Context, data *ServiceData, msg *messages.TranscriptionMessage) error {
	cmdapp.Log.Infof("Got task for ID: %s, profile: %s", msg.ID, msg.Profile)
	normalized, err := data.Normalizer.Normalize(ctx, msg.File)
	if err != nil {
		return errors.Wrap(err, "Can't normalize audio")
	}
	defer removeFile(data, normalized)

	result, err := data.Recognizer.Recognize(ctx, normalized, msg.Profile)
	if err != nil {
		return err
	}
	err = data.ResultSaver.Save(msg.ID, result)
	if err != nil {
		return errors.Wrap(err, "Can't save result")
	}
	err = data.StatusSaver.Save(msg.ID, status.Success)
	if err != nil {
		return errors.Wrap(err, "Can't save status")
	}
	return nil
}

func removeFile(data *ServiceData, name string) {
	err := data.RemoveFunc(name)
	if err != nil {
		cmdapp.Log.Warnf("Can't delete file %s: %s", name, err.Error())
	}
}
