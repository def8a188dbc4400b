//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	owner    *selectionOwner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = ErrNoDisplay
			return
		}
		owner, initErr = newSelectionOwner()
	})
	return initErr
}

// WriteImage encodes img as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	return owner.publish(nil, data)
}

// WriteText publishes text to the clipboard.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return owner.publish([]byte(text), nil)
}

// selectionOwner holds the CLIPBOARD selection on a hidden window and
// answers conversion requests from other clients.
type selectionOwner struct {
	conn   *xgb.Conn
	window xproto.Window

	clipboard, targets, utf8, textPlain, png, incr xproto.Atom

	// chunk is the largest property write; bigger payloads go out via INCR.
	chunk int

	// transfers are touched only by the serve goroutine.
	transfers map[transferKey]*pendingTransfer

	mu    sync.RWMutex
	text  []byte
	image []byte
}

type transferKey struct {
	window   xproto.Window
	property xproto.Atom
}

type pendingTransfer struct {
	incrTransfer
	kind xproto.Atom
}

func newSelectionOwner() (*selectionOwner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		conn.Close()
		return nil, err
	}
	o := &selectionOwner{
		conn:      conn,
		window:    window,
		chunk:     chunkSize(xproto.Setup(conn).MaximumRequestLength),
		transfers: make(map[transferKey]*pendingTransfer),
	}
	for name, dst := range map[string]*xproto.Atom{
		"CLIPBOARD":                &o.clipboard,
		"TARGETS":                  &o.targets,
		"UTF8_STRING":              &o.utf8,
		"text/plain;charset=utf-8": &o.textPlain,
		"image/png":                &o.png,
		"INCR":                     &o.incr,
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			xproto.DestroyWindow(conn, window)
			conn.Close()
			return nil, err
		}
		*dst = reply.Atom
	}
	go o.serve()
	return o, nil
}

func (o *selectionOwner) publish(text, img []byte) error {
	o.mu.Lock()
	o.text = text
	o.image = img
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *selectionOwner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.PropertyNotifyEvent:
			if e.State == xproto.PropertyDelete {
				o.continueTransfer(transferKey{e.Window, e.Atom})
			}
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.text, o.image = nil, nil
			o.mu.Unlock()
		}
	}
}

func (o *selectionOwner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	o.mu.RLock()
	text, img := o.text, o.image
	o.mu.RUnlock()

	var (
		kind    xproto.Atom
		format  byte = 8
		payload []byte
	)
	switch e.Target {
	case o.targets:
		offered := []xproto.Atom{o.targets}
		if len(text) > 0 {
			offered = append(offered, o.utf8, xproto.AtomString, o.textPlain)
		}
		if len(img) > 0 {
			offered = append(offered, o.png)
		}
		payload = make([]byte, 4*len(offered))
		for i, a := range offered {
			xgb.Put32(payload[i*4:], uint32(a))
		}
		kind, format = xproto.AtomAtom, 32
	case o.utf8, xproto.AtomString, o.textPlain:
		payload, kind = text, o.utf8
	case o.png:
		payload, kind = img, o.png
	}
	if len(payload) == 0 {
		property = xproto.AtomNone
	}

	switch {
	case property == xproto.AtomNone:
	case format == 8 && len(payload) > o.chunk:
		o.startTransfer(e.Requestor, property, kind, payload)
	default:
		length := uint32(len(payload))
		if format == 32 {
			length /= 4
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property, kind, format, length, payload)
	}
	reply := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(reply.Bytes()))
}

// startTransfer announces an INCR transfer for payloads larger than one
// request. The requestor deletes the property to ask for each chunk.
func (o *selectionOwner) startTransfer(requestor xproto.Window, property, kind xproto.Atom, payload []byte) {
	xproto.ChangeWindowAttributes(o.conn, requestor, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange})
	o.transfers[transferKey{requestor, property}] = &pendingTransfer{
		incrTransfer: incrTransfer{data: payload, chunk: o.chunk},
		kind:         kind,
	}
	size := make([]byte, 4)
	xgb.Put32(size, uint32(len(payload)))
	xproto.ChangeProperty(o.conn, xproto.PropModeReplace, requestor, property, o.incr, 32, 1, size)
}

func (o *selectionOwner) continueTransfer(key transferKey) {
	t, ok := o.transfers[key]
	if !ok {
		return
	}
	part, last := t.next()
	if last {
		delete(o.transfers, key)
		xproto.ChangeWindowAttributes(o.conn, key.window, xproto.CwEventMask, []uint32{xproto.EventMaskNoEvent})
	}
	xproto.ChangeProperty(o.conn, xproto.PropModeReplace, key.window, key.property, t.kind, 8, uint32(len(part)), part)
}
