package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/propanim/animate"
	"github.com/matt-g-everett/propanim/api"
	"github.com/matt-g-everett/propanim/demo"
	"github.com/matt-g-everett/propanim/remote"
	"github.com/matt-g-everett/propanim/render"
	"github.com/matt-g-everett/propanim/sound"
	"github.com/matt-g-everett/propanim/terminal"
)

const defaultConfigPath = "config.yaml"

type app struct {
	Config     demo.Config
	Screen     *demo.Screen
	Bridge     *demo.Bridge
	Client     mqtt.Client
	Controller *remote.Controller
	Player     *sound.Player
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Controller.Subscribe(); err != nil {
		log.Printf("Subscribe failed: %v", err)
	}
}

func (a *app) readConfig(configPath string) {
	config, err := demo.LoadConfig(configPath)
	if err != nil {
		// Running without a config file is fine; a broken one is not.
		if configPath != defaultConfigPath || !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("No %s, using defaults", configPath)
	}
	a.Config = config
}

func (a *app) connectMqtt(ctx context.Context) {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Controller = remote.NewController(a.Config, a.Client, a.Bridge)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	go a.Controller.Run(ctx)
}

func (a *app) startSound() {
	player, err := sound.NewPlayer(a.Config.Sound.Frequency, time.Duration(a.Config.Sound.DurationMs)*time.Millisecond)
	if err != nil {
		log.Printf("Sound disabled: %v", err)
		return
	}
	a.Player = player
	a.Screen.OnStart(player.Play)
}

func (a *app) serveApi(ctx context.Context) {
	server := api.NewApi(a.Bridge)
	go func() {
		if err := server.Serve(ctx, a.Config.Api.Listen, a.Config.Api.Debug); err != nil {
			log.Printf("API stopped: %v", err)
		}
	}()
}

func (a *app) run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// tcell owns the terminal, so log lines would only corrupt the screen.
	if a.Config.Frontend == "terminal" {
		log.SetOutput(io.Discard)
		mqtt.ERROR = log.New(io.Discard, "", 0)
	}

	if a.Config.Sound.Enabled {
		a.startSound()
	}
	if a.Player != nil {
		defer a.Player.Close()
	}
	if a.Config.Mqtt.URL != "" {
		a.connectMqtt(ctx)
		defer a.Client.Disconnect(250)
	}
	if a.Config.Api.Listen != "" {
		a.serveApi(ctx)
	}

	if a.Config.Frontend == "terminal" {
		t, err := terminal.New(a.Screen, a.Bridge)
		if err != nil {
			return err
		}
		defer t.Close()
		t.Run(ctx)
		return nil
	}
	return render.Run(ctx, a.Screen, a.Bridge, a.Config)
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", defaultConfigPath, "YAML config file.")
	frontend := flag.String("frontend", "", "Override the frontend: window or terminal.")
	listen := flag.String("api", "", "Override the HTTP API listen address.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	if *frontend != "" {
		a.Config.Frontend = *frontend
	}
	if *listen != "" {
		a.Config.Api.Listen = *listen
	}
	if err := a.Config.Validate(); err != nil {
		log.Fatalf("Config: %v", err)
	}
	log.Printf("Config: %+v", a.Config)

	rnd := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	a.Screen = demo.NewScreen(animate.NewEngine(),
		float64(a.Config.Window.Width), float64(a.Config.Window.Height), a.Config.Star.Size, rnd)
	a.Screen.OnStart(func(action demo.Action) {
		log.Printf("Started %s", action)
	})
	a.Bridge = demo.NewBridge(16)

	if err := a.run(); err != nil {
		log.Fatal(err)
	}
}
