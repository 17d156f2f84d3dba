package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const helpText = `commands:
  show                 print the inventory with local edits applied
  title <text>         set the title
  desc <text>          set the description ("-" clears it)
  public on|off        toggle public write access
  category <id>|none   set or clear the category
  tags a,b,c           replace the tags
  image <path>         upload a new image now
  reload               drop local edits and refetch
  posts                list discussion posts
  post <text>          add a discussion post
  version              print the server version
  quit                 flush drafts and exit`

var errQuit = errors.New("quit")

type App struct {
	reconciler  service.SettingsReconciler
	server      adapter.ServerAdapter
	rooms       adapter.RoomClient
	inventoryID int64

	in io.Reader

	outMu sync.Mutex
	out   io.Writer

	logger *logger.Logger
}

// NewApp creates the client runtime for inventoryID. rooms may be nil, in
// which case live discussion events are not shown.
func NewApp(reconciler service.SettingsReconciler, server adapter.ServerAdapter, rooms adapter.RoomClient, inventoryID int64, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if inventoryID <= 0 {
		return nil, fmt.Errorf("invalid inventory id %d", inventoryID)
	}
	return &App{
		reconciler:  reconciler,
		server:      server,
		rooms:       rooms,
		inventoryID: inventoryID,
		in:          in,
		out:         out,
		logger:      logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.reconciler.Start(ctx, a.inventoryID); err != nil {
		return fmt.Errorf("start reconciler: %w", err)
	}
	defer a.reconciler.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.watchNotifications(ctx)
	}()

	if a.rooms != nil {
		if err := a.joinRoom(ctx); err != nil {
			// discussion events are optional, editing still works
			a.logger.Warn().Err(err).Str("func", "App.Run").Msg("collaboration channel unavailable")
		} else {
			defer a.rooms.Close()
			wg.Add(1)
			go func() {
				defer wg.Done()
				a.watchRoom(ctx)
			}()
		}
	}

	a.printState()
	err := a.readCommands(ctx)

	cancel()
	wg.Wait()
	return err
}

func (a *App) joinRoom(ctx context.Context) error {
	if err := a.rooms.Connect(ctx); err != nil {
		return err
	}
	if err := a.rooms.Join(a.inventoryID); err != nil {
		a.rooms.Close()
		return err
	}
	return nil
}

func (a *App) readCommands(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line := <-lines:
			err := a.execute(ctx, strings.TrimSpace(line))
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				a.printf("error: %v\n", err)
			}
		}
	}
}

// execute runs one command line.
func (a *App) execute(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help":
		a.printf("%s\n", helpText)
	case "quit", "exit":
		return errQuit
	case "show":
		a.printState()
	case "title":
		if arg == "" {
			return errors.New("title must not be empty")
		}
		a.reconciler.Edit(models.InventoryPatch{Title: &arg})
	case "desc":
		description := arg
		if arg == "-" {
			description = ""
		}
		a.reconciler.Edit(models.InventoryPatch{Description: &description})
	case "public":
		public, err := parseSwitch(arg)
		if err != nil {
			return err
		}
		a.reconciler.Edit(models.InventoryPatch{IsPublic: &public})
	case "category":
		return a.editCategory(arg)
	case "tags":
		tags := splitTags(arg)
		a.reconciler.Edit(models.InventoryPatch{Tags: &tags})
	case "image":
		return a.uploadImage(ctx, arg)
	case "reload":
		if err := a.reconciler.Reload(ctx); err != nil {
			return err
		}
		a.printState()
	case "posts":
		return a.listPosts(ctx)
	case "post":
		if arg == "" {
			return errors.New("post must not be empty")
		}
		if _, err := a.server.CreatePost(ctx, a.inventoryID, arg); err != nil {
			return err
		}
	case "version":
		version, err := a.server.GetAppVersion(ctx)
		if err != nil {
			return err
		}
		a.printf("server %s (%s, %s)\n", version.Version, version.Commit, version.Date)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (a *App) editCategory(arg string) error {
	// zero clears the category on the server
	var id int64
	if arg != "none" {
		parsed, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid category %q", arg)
		}
		id = parsed
	}
	a.reconciler.Edit(models.InventoryPatch{CategoryID: &id})
	return nil
}

func (a *App) uploadImage(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if err = a.reconciler.ReplaceImage(ctx, data, http.DetectContentType(data)); err != nil {
		return err
	}
	a.printf("image uploaded\n")
	return nil
}

func (a *App) listPosts(ctx context.Context) error {
	posts, err := a.server.ListPosts(ctx, a.inventoryID)
	if err != nil {
		return err
	}
	for _, p := range posts {
		a.printPost(p)
	}
	return nil
}

func (a *App) watchNotifications(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-a.reconciler.Notifications():
			switch n.Kind {
			case service.NotificationConflict:
				a.printf("! inventory changed on the server (version %d); your edits are kept, type reload to discard them\n", n.Version)
			case service.NotificationFlushFailed:
				a.printf("! save failed, retrying: %v\n", n.Err)
			case service.NotificationSaved:
				a.printf("saved (version %d)\n", n.Version)
			}
		}
	}
}

func (a *App) watchRoom(ctx context.Context) {
	events := a.rooms.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				a.printf("! collaboration channel closed\n")
				return
			}
			switch event.Type {
			case models.EventNewPost:
				if event.Post != nil {
					a.printPost(*event.Post)
				}
			case models.EventError:
				a.printf("! channel error: %s\n", event.Message)
			}
		}
	}
}

func (a *App) printState() {
	inv := a.reconciler.State()

	description := ""
	if inv.Description != nil {
		description = *inv.Description
	}
	category := "none"
	if inv.CategoryID != nil && *inv.CategoryID > 0 {
		category = strconv.FormatInt(*inv.CategoryID, 10)
	}

	a.printf("#%d v%d %q\n  description: %s\n  public: %t  category: %s  tags: %s\n",
		inv.ID, inv.Version, inv.Title, description, inv.IsPublic, category, strings.Join(inv.Tags, ", "))
}

func (a *App) printPost(p models.DiscussionPost) {
	a.printf("[%s] %s: %s\n", p.CreatedAt.Format("2006-01-02 15:04"), p.UserEmail, p.Content)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

func splitTags(arg string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(arg, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
