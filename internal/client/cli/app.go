package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/landkeeper/internal/client/client"
	"github.com/dmitrijs2005/landkeeper/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	email     string
	stopWatch context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

// Run blocks in the REPL and releases the connection afterwards.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.stopWatching()
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.client.SignedIn()
}

// call bounds one request by the configured timeout.
func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
