package remote

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/propanim/demo"
)

// CommandMessage asks the screen to press one of its buttons.
type CommandMessage struct {
	Action string `json:"action"`
}

// StatusMessage is published whenever the screen state changes.
type StatusMessage struct {
	Version uint64     `json:"version"`
	State   demo.State `json:"state"`
}

// Controller lets MQTT clients drive the screen and watch its state.
type Controller struct {
	config        demo.Config
	client        mqtt.Client
	bridge        *demo.Bridge
	submitTimeout time.Duration
	lastVersion   uint64
}

// NewController creates an instance of a Controller.
func NewController(config demo.Config, client mqtt.Client, bridge *demo.Bridge) *Controller {
	c := new(Controller)
	c.config = config
	c.client = client
	c.bridge = bridge
	c.submitTimeout = time.Second
	return c
}

func (c *Controller) handleCommand(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message CommandMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad command: %v", err)
		return
	}

	action, err := demo.ParseAction(message.Action)
	if err != nil {
		log.Printf("Bad command: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.submitTimeout)
	defer cancel()

	started, err := c.bridge.Submit(ctx, action)
	if err != nil {
		log.Printf("Command %s dropped: %v", action, err)
	} else if !started {
		log.Printf("Command %s ignored, animation running", action)
	}
}

// Subscribe listens for commands. Call it from the client's connect handler so
// the subscription survives reconnects.
func (c *Controller) Subscribe() error {
	if token := c.client.Subscribe(c.config.Mqtt.Topics.Command, 0, c.handleCommand); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// PublishState sends the current state if it changed since the last call.
func (c *Controller) PublishState() error {
	state, version := c.bridge.State()
	if version == 0 || version == c.lastVersion {
		return nil
	}

	b, err := json.Marshal(StatusMessage{Version: version, State: state})
	if err != nil {
		return err
	}

	token := c.client.Publish(c.config.Mqtt.Topics.Status, 0, true, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return err
	}

	c.lastVersion = version
	return nil
}

// Run publishes state changes until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	publishTimer := time.NewTicker(time.Duration(c.config.Mqtt.StatusIntervalMs) * time.Millisecond)
	defer publishTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-publishTimer.C:
			if err := c.PublishState(); err != nil {
				log.Printf("Publish status: %v", err)
			}
		}
	}
}
