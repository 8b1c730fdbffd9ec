// Package dbusapi exposes the daemon on the session bus and provides the
// client the CLI uses to reach it.
package dbusapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

const (
	// BusName is the well-known name owned by the daemon.
	BusName = "org.bnema.Stayup"
	// ObjectPath is where the control object lives.
	ObjectPath dbus.ObjectPath = "/org/bnema/Stayup"
	// Interface is the control interface name.
	Interface = "org.bnema.Stayup1"

	introspectIface = "org.freedesktop.DBus.Introspectable"
	errorPrefix     = Interface + ".Error."
)

const interfaceXML = `
<interface name="` + Interface + `">
  <method name="Command">
    <arg name="command" type="s" direction="in"/>
  </method>
  <method name="Activate"/>
  <method name="Deactivate"/>
  <method name="Status">
    <arg name="active" type="b" direction="out"/>
    <arg name="download_activated" type="b" direction="out"/>
    <arg name="scope" type="s" direction="out"/>
  </method>
  <method name="GrantPermission">
    <arg name="permission" type="s" direction="in"/>
  </method>
  <method name="RevokePermission">
    <arg name="permission" type="s" direction="in"/>
  </method>
  <signal name="StateChanged">
    <arg name="active" type="b"/>
  </signal>
</interface>`

// Controller is what the service drives.
type Controller interface {
	HandleIntent(ctx context.Context, intent entity.Intent)
	HandleCommand(ctx context.Context, command string)
	Status(ctx context.Context) entity.ActivationStatus
}

// PermissionManager grants and revokes permissions on behalf of bus callers.
type PermissionManager interface {
	Grant(ctx context.Context, permType entity.PermissionType) error
	Revoke(ctx context.Context, permType entity.PermissionType) error
}

// Compile-time interface check.
var _ port.Indicator = (*Service)(nil)

// Service is the exported control object. It doubles as an indicator by
// emitting StateChanged.
type Service struct {
	conn        *dbus.Conn
	ctx         context.Context
	controller  Controller
	permissions PermissionManager
}

// NewService creates the service. Call Export to publish it.
func NewService(ctx context.Context, conn *dbus.Conn, controller Controller, permissions PermissionManager) *Service {
	return &Service{
		conn:        conn,
		ctx:         logging.WithComponent(ctx, "dbus"),
		controller:  controller,
		permissions: permissions,
	}
}

// SetController binds the controller. The coordinator itself reports state
// through the service, so it is usually created after it. Call before Export.
func (s *Service) SetController(controller Controller) {
	s.controller = controller
}

// Export publishes the object and claims BusName. It fails if another
// daemon already owns the name.
func (s *Service) Export() error {
	if err := s.conn.ExportMethodTable(s.methods(), ObjectPath, Interface); err != nil {
		return fmt.Errorf("export %s: %w", Interface, err)
	}
	node := "<node>" + interfaceXML + introspect.IntrospectDataString + "</node>"
	if err := s.conn.Export(introspect.Introspectable(node), ObjectPath, introspectIface); err != nil {
		return fmt.Errorf("export introspection: %w", err)
	}

	reply, err := s.conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("request name %s: %w", BusName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("request name %s: %w", BusName, ErrAlreadyRunning)
	}

	logging.FromContext(s.ctx).Info().Str("name", BusName).Msg("control service exported")
	return nil
}

// Close gives up the bus name and unexports the object.
func (s *Service) Close() error {
	_, err := s.conn.ReleaseName(BusName)
	_ = s.conn.Export(nil, ObjectPath, Interface)
	_ = s.conn.Export(nil, ObjectPath, introspectIface)
	return err
}

// methods maps bus method names to handlers.
func (s *Service) methods() map[string]any {
	return map[string]any{
		"Command":          s.command,
		"Activate":         s.activate,
		"Deactivate":       s.deactivate,
		"Status":           s.status,
		"GrantPermission":  s.grantPermission,
		"RevokePermission": s.revokePermission,
	}
}

func (s *Service) command(command string) *dbus.Error {
	if command != entity.ToggleCommand {
		return busError("UnknownCommand", fmt.Errorf("unknown command %q", command))
	}
	s.controller.HandleCommand(s.ctx, command)
	return nil
}

func (s *Service) activate() *dbus.Error {
	s.controller.HandleIntent(s.ctx, entity.IntentActivate)
	return nil
}

func (s *Service) deactivate() *dbus.Error {
	s.controller.HandleIntent(s.ctx, entity.IntentDeactivate)
	return nil
}

func (s *Service) status() (bool, bool, string, *dbus.Error) {
	st := s.controller.Status(s.ctx)
	return st.Active, st.DownloadActivated, string(st.Scope), nil
}

func (s *Service) grantPermission(name string) *dbus.Error {
	return s.permissionCall(name, s.permissions.Grant)
}

func (s *Service) revokePermission(name string) *dbus.Error {
	return s.permissionCall(name, s.permissions.Revoke)
}

func (s *Service) permissionCall(name string, fn func(context.Context, entity.PermissionType) error) *dbus.Error {
	permType, ok := entity.ParsePermissionType(name)
	if !ok {
		return busError("UnknownPermission", fmt.Errorf("%w: %s", entity.ErrUnknownPermission, name))
	}
	if s.permissions == nil {
		return busError("Failed", errors.New("permissions are not managed by this daemon"))
	}
	if err := fn(s.ctx, permType); err != nil {
		return busError("Failed", err)
	}
	return nil
}

// SetIndicator emits StateChanged.
func (s *Service) SetIndicator(_ context.Context, active bool) error {
	return s.conn.Emit(ObjectPath, Interface+".StateChanged", active)
}

func busError(name string, err error) *dbus.Error {
	return dbus.NewError(errorPrefix+name, []any{err.Error()})
}
