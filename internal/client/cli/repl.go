package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/hradmin/internal/buildinfo"
	"github.com/dmitrijs2005/hradmin/internal/session"
)

const helpText = `Session:
  login                      sign in with email and password
  logout                     sign out and forget the session
  status                     show the session state
Directory:
  affiliations               list affiliations
  users [workspace-id]       list users, optionally of one workspace
Workspaces:
  workspaces                 list workspaces
  workspace <id>             show a workspace
  addworkspace               create a workspace
  editworkspace <id>         update a workspace, blank keeps the value
  delworkspace <id>          delete a workspace
Contracts:
  contracts [page] [size]    list contracts
  contract <id>              show a contract
  addcontract                register a contract
  editcontract <id>          update a contract, blank keeps the value
  delcontract <id>           delete a contract
  phonekey <phone>           lookup key of a phone number
Schedules:
  pending [page] [size]      list schedules waiting for approval
  schedules <workspace-id>   list schedules of a workspace
  approve <id>               approve a schedule
  reject <id> [reason]       reject a schedule
Tools:
  encrypt <text>             encrypt a field value
  decrypt <base64>           decrypt a field value
  hmac <text>                keyed hash of a value
  help                       show this help
  exit | quit                leave the shell`

// historian is implemented by readers that keep a command history.
type historian interface {
	Remember(line string)
}

// RunShell runs the interactive shell until exit, EOF or ctx is done.
func (a *App) RunShell(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.printf("hradmin %s, type 'help' for commands\n", buildinfo.Short())
	go a.WatchSession(ctx, a.config.SessionCheckInterval)

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := a.in.Prompt(a.prompt(ctx))
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, errAborted):
			a.println()
			return nil
		case err != nil:
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if h, ok := a.in.(historian); ok {
			h.Remember(line)
		}
		if args[0] == "exit" || args[0] == "quit" {
			a.println("Bye!")
			return nil
		}
		if err := a.dispatch(ctx, args[0], args[1:]); err != nil {
			if errors.Is(err, errAborted) {
				a.println()
				continue
			}
			a.fail(err)
		}
	}
}

// prompt shows who is signed in and whether the session still works.
func (a *App) prompt(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	s, err := a.sessions.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "load session", "error", err)
		return "hradmin> "
	}
	switch s.State() {
	case session.StateAuthenticated:
		return fmt.Sprintf("hradmin (%s)> ", s.Email)
	case session.StateExpired:
		return fmt.Sprintf("hradmin (%s, expired)> ", s.Email)
	default:
		return "hradmin> "
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help", "?":
		a.println(helpText)
		return nil

	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "status":
		return a.Status(ctx)

	case "affiliations":
		return a.Affiliations(ctx)
	case "users":
		return a.Users(ctx, args)

	case "workspaces":
		return a.Workspaces(ctx)
	case "workspace":
		return a.ShowWorkspace(ctx, args)
	case "addworkspace":
		return a.AddWorkspace(ctx)
	case "editworkspace":
		return a.EditWorkspace(ctx, args)
	case "delworkspace":
		return a.DeleteWorkspace(ctx, args)

	case "contracts":
		return a.Contracts(ctx, args)
	case "contract":
		return a.ShowContract(ctx, args)
	case "addcontract":
		return a.AddContract(ctx)
	case "editcontract":
		return a.EditContract(ctx, args)
	case "delcontract":
		return a.DeleteContract(ctx, args)
	case "phonekey":
		return a.PhoneKey(args)

	case "pending":
		return a.Pending(ctx, args)
	case "schedules":
		return a.Schedules(ctx, args)
	case "approve":
		return a.Approve(ctx, args)
	case "reject":
		return a.Reject(ctx, args)

	case "encrypt":
		return a.Encrypt(args)
	case "decrypt":
		return a.Decrypt(args)
	case "hmac":
		return a.HMAC(args)

	default:
		a.println("Unknown command:", cmd)
		return nil
	}
}

// WatchSession checks the session every interval until ctx is done.
func (a *App) WatchSession(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkSession(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// checkSession refreshes the token when due and announces an expired
// session once until the next login.
func (a *App) checkSession(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	s, err := a.sessions.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "session check failed", "error", err)
		return
	}
	if s.State() == session.StateExpired && !a.expiredShown.Swap(true) {
		a.printf("\nsession expired: run 'login' to sign in again\n")
	}
}
