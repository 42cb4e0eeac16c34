package upload

import (
	"time"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload/api"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
)

type eventChannelFunc func() (<-chan amqp.Delivery, error)

func listenQueue(channel <-chan amqp.Delivery, data *ServiceData, fc chan<- bool) {
	for d := range channel {
		err := processEvent(&d, data)
		if err != nil {
			cmdapp.Log.Errorf("Can't process message %s\n%s", d.MessageId, string(d.Body))
			cmdapp.Log.Error(err)
		}
	}
	cmdapp.Log.Infof("Stopped listening queue")
	close(fc)
}

func registerQueue(data *ServiceData, quitChan <-chan bool, initialWait time.Duration) {
	wait := initialWait
	for {
		select {
		case <-quitChan:
			cmdapp.Log.Infof("Quit listening queue")
			return
		default:
			fc := make(chan bool)
			cmdapp.Log.Infof("Trying listening queue")
			msgs, err := data.EventChannelFunc()
			if err != nil {
				cmdapp.Log.Error(err)
				wait = wait * 2
				if wait > time.Minute {
					wait = time.Minute
				}
				cmdapp.Log.Infof("Wait before reconnect %d s", wait/time.Second)
				time.Sleep(wait)
				continue
			}
			wait = initialWait
			go listenQueue(msgs, data, fc)
			<-fc
		}
	}
}

func processEvent(d *amqp.Delivery, data *ServiceData) error {
	id := string(d.Body)
	cmdapp.Log.Infof("Got status change event for %s", id)
	conns, found := getConnections(id)
	if !found {
		cmdapp.Log.Infof("No connections found for " + id)
		return nil
	}
	result, err := data.StatusProvider.Get(id)
	if err != nil {
		return errors.Wrap(err, "Cannot get status for ID: "+id)
	}
	for _, c := range conns {
		cmdapp.LogIf(sendMsg(c, result))
	}
	return nil
}

func sendMsg(c WsConn, result *api.TranscriptionResult) error {
	err := c.WriteJSON(result)
	if err != nil {
		return errors.Wrap(err, "Cannot write to websocket")
	}
	cmdapp.Log.Debug("Sent msg to websocket")
	return nil
}
