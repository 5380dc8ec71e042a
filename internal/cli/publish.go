package cli

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Message is one MQTT publication.
type Message struct {
	Broker   string
	ClientID string
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Reading is the payload published for every reading of the clock.
type Reading struct {
	Chip       string    `json:"chip"`
	Time       time.Time `json:"time"`
	LowVoltage bool      `json:"lowVoltage"`
}

func publishMQTT(m Message) error {
	opts := mqtt.NewClientOptions().AddBroker(m.Broker).SetClientID(m.ClientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)

	token := client.Publish(m.Topic, m.QoS, m.Retained, m.Payload)
	token.Wait()
	return token.Error()
}

func (a *App) publishCmd() *cobra.Command {
	m := Message{}
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the clock's time to an MQTT broker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, lowVoltage, err := a.read()
			if err != nil {
				return err
			}
			m.Payload, err = json.Marshal(Reading{Chip: a.opts.Chip, Time: t, LowVoltage: lowVoltage})
			if err != nil {
				return err
			}
			if err := a.Publish(m); err != nil {
				return err
			}
			a.Log.Info("published", zap.String("broker", m.Broker), zap.String("topic", m.Topic), zap.Time("rtc", t))
			return nil
		},
	}
	cmd.Flags().StringVar(&m.Broker, "broker", "tcp://localhost:1883", "MQTT broker URL")
	cmd.Flags().StringVar(&m.ClientID, "client-id", "rtcctl", "MQTT client ID")
	cmd.Flags().StringVar(&m.Topic, "topic", "rtc/time", "MQTT topic")
	cmd.Flags().Uint8Var(&m.QoS, "qos", 0, "MQTT quality of service (0-2)")
	cmd.Flags().BoolVar(&m.Retained, "retain", false, "publish as retained message")
	return cmd
}
