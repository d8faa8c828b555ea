package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/landkeeper/internal/filex"
	"github.com/dmitrijs2005/landkeeper/internal/netx"
)

// DownloadDir is where fetched objects are saved, relative to the working
// directory.
const DownloadDir = "downloads"

// maxDownload caps a single fetch.
const maxDownload = 512 << 20

// httpClient is a test seam for the client used by Fetch.
var httpClient = http.DefaultClient

// Fetch resolves an object key through the server, which signs private
// buckets, and saves the object under DownloadDir.
func (a *App) Fetch(ctx context.Context, args []string) error {
	if err := need(args, 2); err != nil {
		return err
	}

	cctx, cancel := a.call(ctx)
	defer cancel()

	u, err := a.client.ResolveURL(cctx, args[0], args[1])
	if err != nil {
		return err
	}

	data, err := netx.Download(ctx, httpClient, u, maxDownload)
	if err != nil {
		return err
	}

	dir, err := filex.EnsureSubdDir(DownloadDir)
	if err != nil {
		return err
	}
	path, err := filex.SaveUnique(dir, args[1], data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", path, len(data))
	return nil
}
