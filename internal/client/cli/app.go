// Package cli implements the interactive client: a small command loop over
// the server's HTTP API for registering, logging in and checking a token.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/client/api"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
	"github.com/dmitrijs2005/authkeeper/internal/common"
)

type App struct {
	client *api.Client
	token  string
}

func NewApp(cfg *config.Config) (*App, error) {
	return &App{client: api.NewClient(cfg.ServerEndpointAddr)}, nil
}

func (a *App) Register() {
	reader := bufio.NewReader(os.Stdin)

	userName, err := GetSimpleText(reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(context.Background(), userName, string(password)); err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("Success!")
}

func (a *App) Login() {
	reader := bufio.NewReader(os.Stdin)

	userName, err := GetSimpleText(reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	result, err := a.client.Login(context.Background(), userName, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if !result.Authenticated {
		fmt.Println("Wrong username or password")
		return
	}

	a.token = result.JWT
	fmt.Println("Logged in")
}

func (a *App) WhoAmI() {
	if a.token == "" {
		fmt.Println("Not logged in")
		return
	}

	username, err := a.client.WhoAmI(context.Background(), a.token)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Logged in as %s\n", username)
}

func (a *App) Run() {
	reader := bufio.NewReader(os.Stdin)

	for {
		cmd, err := GetSimpleText(reader, "Command (register/login/whoami/exit)", os.Stdout)
		if err != nil {
			return
		}

		switch cmd {
		case "register":
			a.Register()
		case "login":
			a.Login()
		case "whoami":
			a.WhoAmI()
		case "exit":
			return
		default:
			fmt.Println("Unknown command")
		}
	}
}
