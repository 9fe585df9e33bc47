// Package nav routes the UI to named destinations.
//
// Components never build screens for other components. They describe where
// to go with a PageReference and emit it through Navigate; the app owns a
// Resolver that turns references into screens and pushes them on its Stack.
package nav

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownDestination is returned when no route matches a reference.
var ErrUnknownDestination = errors.New("unknown destination")

const (
	TypeRecordPage = "standard__recordPage"

	ActionView = "view"
)

// Attributes carries the parameters of a page reference.
type Attributes struct {
	RecordID      string
	ObjectAPIName string
	ActionName    string
}

// PageReference names a destination.
type PageReference struct {
	Type       string
	Attributes Attributes
}

func (r PageReference) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", r.Type, r.Attributes.ObjectAPIName, r.Attributes.RecordID, r.Attributes.ActionName)
}

// RecordPage is the reference for viewing one record.
func RecordPage(recordID, objectAPIName string) PageReference {
	return PageReference{
		Type: TypeRecordPage,
		Attributes: Attributes{
			RecordID:      recordID,
			ObjectAPIName: objectAPIName,
			ActionName:    ActionView,
		},
	}
}

// NavigateMsg asks the app to open Ref.
type NavigateMsg struct {
	Ref PageReference
}

// Navigate returns a command that emits a NavigateMsg for ref.
func Navigate(ref PageReference) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Ref: ref} }
}

// Screen is a view pushed over the tabs. Update returns true to be popped.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Title() string
}

// Route builds the screen for a reference, plus the command that loads it.
type Route func(ref PageReference) (Screen, tea.Cmd, error)

// Resolver maps reference type and object to routes.
type Resolver struct {
	routes map[string]Route
}

func NewResolver() *Resolver {
	return &Resolver{routes: map[string]Route{}}
}

func routeKey(refType, objectAPIName string) string {
	return refType + "|" + objectAPIName
}

// Handle registers route for references of refType on objectAPIName.
func (r *Resolver) Handle(refType, objectAPIName string, route Route) {
	r.routes[routeKey(refType, objectAPIName)] = route
}

// Resolve finds the route for ref and builds its screen.
func (r *Resolver) Resolve(ref PageReference) (Screen, tea.Cmd, error) {
	route, ok := r.routes[routeKey(ref.Type, ref.Attributes.ObjectAPIName)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownDestination, ref)
	}
	if ref.Type == TypeRecordPage && ref.Attributes.RecordID == "" {
		return nil, nil, fmt.Errorf("%w: %s has no record id", ErrUnknownDestination, ref)
	}
	return route(ref)
}
