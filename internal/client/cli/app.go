package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/orderly-app/orderly/internal/client/client"
	"github.com/orderly-app/orderly/internal/client/config"
	"github.com/orderly-app/orderly/internal/client/services"
	"github.com/orderly-app/orderly/internal/protocol"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	friendService services.FriendService
	user          *protocol.UserInfo
	reader        *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.Dial(c.ServerEndpointAddr, c.InsecureSkipVerify, c.DialTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient)
	fs := services.NewFriendService(apiClient)

	return &App{
		config:        c,
		authService:   as,
		friendService: fs,
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	fmt.Println("Welcome to Orderly CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}
