package dbusapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/stayup/internal/domain/entity"
)

var (
	// ErrNotRunning is returned when no daemon owns BusName.
	ErrNotRunning = errors.New("stayup daemon is not running")
	// ErrAlreadyRunning is returned by Export when BusName is taken.
	ErrAlreadyRunning = errors.New("another stayup daemon is running")
)

// Client calls the daemon's control object.
type Client struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewClient wraps an existing session bus connection.
func NewClient(conn *dbus.Conn) *Client {
	return &Client{conn: conn, obj: conn.Object(BusName, ObjectPath)}
}

// Dial connects to the session bus.
func Dial() (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return NewClient(conn), nil
}

// Close closes the bus connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Activate asks the daemon to keep the session awake.
func (c *Client) Activate(ctx context.Context) error {
	return c.call(ctx, "Activate")
}

// Deactivate asks the daemon to allow sleep again.
func (c *Client) Deactivate(ctx context.Context) error {
	return c.call(ctx, "Deactivate")
}

// Toggle sends the shortcut command.
func (c *Client) Toggle(ctx context.Context) error {
	return c.call(ctx, "Command", entity.ToggleCommand)
}

// Status returns the daemon's activation state.
func (c *Client) Status(ctx context.Context) (entity.ActivationStatus, error) {
	var (
		st    entity.ActivationStatus
		scope string
	)
	call := c.obj.CallWithContext(ctx, Interface+".Status", 0)
	if err := call.Store(&st.Active, &st.DownloadActivated, &scope); err != nil {
		return st, translate(err)
	}
	st.Scope = entity.KeepAwakeScope(scope)
	return st, nil
}

// GrantPermission grants permType through the daemon so its listeners update.
func (c *Client) GrantPermission(ctx context.Context, permType entity.PermissionType) error {
	return c.call(ctx, "GrantPermission", string(permType))
}

// RevokePermission revokes permType through the daemon.
func (c *Client) RevokePermission(ctx context.Context, permType entity.PermissionType) error {
	return c.call(ctx, "RevokePermission", string(permType))
}

func (c *Client) call(ctx context.Context, method string, args ...any) error {
	return translate(c.obj.CallWithContext(ctx, Interface+"."+method, 0, args...).Err)
}

// translate maps bus errors to package errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var busErr dbus.Error
	if errors.As(err, &busErr) {
		switch busErr.Name {
		case "org.freedesktop.DBus.Error.ServiceUnknown", "org.freedesktop.DBus.Error.NameHasNoOwner":
			return ErrNotRunning
		}
		if len(busErr.Body) > 0 {
			if msg, ok := busErr.Body[0].(string); ok {
				return fmt.Errorf("%s: %s", busErr.Name, msg)
			}
		}
	}
	return err
}
