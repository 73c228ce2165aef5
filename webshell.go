/*  D3pixelpaint - Minimal pixel art editor with SVG export
    Copyright (C) 2019  David Vogel

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	rice "github.com/GeertJohan/go.rice"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	webWriteWait      = 10 * time.Second
	webPongWait       = 60 * time.Second
	webPingPeriod     = (webPongWait * 9) / 10
	webMaxMessageSize = 1024
	webSendBuffer     = 256
)

// Message sent from the browser to the editor
type webMessage struct {
	Type  string // PointerDown, PointerEnter, PointerUp, SelectColor, SelectBrush, SelectEraser, SelectRecent, Resize, Clear
	Index int    // Cell index or swatch index
	Color string
	Size  int
}

type webEventRegister struct {
	Client *webClient
}

type webEventUnregister struct {
	Client *webClient
}

type webEventMessage struct {
	Client  *webClient
	Message webMessage
}

type webExportResult struct {
	Document *exportDocument
	Err      error
}

type webEventExport struct {
	Format string
	Result chan<- webExportResult
}

// Shows the editor in a browser.
// All events are funneled through EventChan into a single goroutine that owns the editor.
type webShell struct {
	Config *config
	Editor *editor

	Router *gin.Engine
	Server *http.Server

	EventChan chan interface{}

	upgrader websocket.Upgrader
	clients  map[*webClient]struct{} // Only accessed by the editor goroutine

	quit          chan struct{}
	quitWaitgroup sync.WaitGroup
	closeOnce     sync.Once
}

func newWebShell(conf *config, ed *editor) (shell, error) {
	ws, err := newWebShellInternal(conf, ed)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func newWebShellInternal(conf *config, ed *editor) (*webShell, error) {
	box, err := rice.FindBox("ui")
	if err != nil {
		return nil, fmt.Errorf("Can't find UI files: %v", err)
	}

	ws := &webShell{
		Config:    conf,
		Editor:    ed,
		EventChan: make(chan interface{}, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: map[*webClient]struct{}{},
		quit:    make(chan struct{}),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), webLogger())
	router.StaticFS("/ui", box.HTTPBox())
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/ui/index.htm")
	})
	router.GET("/ws", ws.handleWebsocket)
	router.GET("/export/:format", ws.handleExport)
	ws.Router = router

	ws.Server = &http.Server{
		Addr:    conf.WebAddress,
		Handler: router,
	}

	ws.quitWaitgroup.Add(1)
	go ws.editorLoop()

	return ws, nil
}

func webLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("HTTP request")
	}
}

func (ws *webShell) getShortName() string {
	return "web"
}

func (ws *webShell) getName() string {
	return fmt.Sprintf("Browser (http://%v)", ws.Config.WebAddress)
}

func (ws *webShell) run() error {
	log.Infof("Open http://%v in your browser", ws.Config.WebAddress)

	if err := ws.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("Can't serve on %v: %v", ws.Config.WebAddress, err)
	}

	return nil
}

func (ws *webShell) Close() {
	ws.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ws.Server.Shutdown(ctx); err != nil {
			log.Warnf("Can't shut down web server: %v", err)
		}

		close(ws.quit)
		ws.quitWaitgroup.Wait()
	})
}

// The only goroutine that accesses the editor
func (ws *webShell) editorLoop() {
	defer ws.quitWaitgroup.Done()
	defer func() {
		for client := range ws.clients {
			ws.Editor.unsubscribeListener(client)
			close(client.Send)
		}
		ws.clients = map[*webClient]struct{}{}
	}()

	for {
		select {
		case event := <-ws.EventChan:
			switch event := event.(type) {
			case webEventRegister:
				if err := ws.Editor.replayState(event.Client); err != nil {
					log.Warnf("Can't send editor state to client: %v", err)
					close(event.Client.Send)
					continue
				}
				ws.clients[event.Client] = struct{}{}
				ws.Editor.subscribeListener(event.Client)
			case webEventUnregister:
				if _, ok := ws.clients[event.Client]; ok {
					ws.Editor.unsubscribeListener(event.Client)
					delete(ws.clients, event.Client)
					close(event.Client.Send)
				}
			case webEventMessage:
				if _, ok := ws.clients[event.Client]; !ok {
					continue
				}
				if err := ws.handleMessage(event.Message); err != nil {
					log.Debugf("Can't handle %v message: %v", event.Message.Type, err)
					event.Client.sendError(err)
				}
			case webEventExport:
				doc, err := ws.Editor.export(event.Format, ws.Config.CellPixelSize)
				event.Result <- webExportResult{Document: doc, Err: err}
			default:
				log.Errorf("Unknown event occurred: %T", event)
			}
		case <-ws.quit:
			return
		}
	}
}

func (ws *webShell) handleMessage(msg webMessage) error {
	ed := ws.Editor

	switch msg.Type {
	case "PointerDown":
		return ed.pointerDown(msg.Index)
	case "PointerEnter":
		return ed.pointerEnter(msg.Index)
	case "PointerUp":
		ed.pointerUp()
	case "SelectColor":
		return ed.selectColor(msg.Color)
	case "SelectBrush":
		ed.selectBrush()
	case "SelectEraser":
		ed.selectEraser()
	case "SelectRecent":
		return ed.selectRecent(msg.Index)
	case "Resize":
		return ed.resize(msg.Size)
	case "Clear":
		ed.clear()
	default:
		return fmt.Errorf("Unknown message type %q", msg.Type)
	}

	return nil
}

// Sends an event to the editor goroutine. Returns false if the shell is closed.
func (ws *webShell) sendEvent(event interface{}) bool {
	select {
	case ws.EventChan <- event:
		return true
	case <-ws.quit:
		return false
	}
}

func (ws *webShell) handleWebsocket(c *gin.Context) {
	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("Can't upgrade websocket connection: %v", err)
		return
	}

	client := &webClient{
		Shell: ws,
		Conn:  conn,
		Send:  make(chan []byte, webSendBuffer),
	}

	// Register before reading, so the client gets the state before any of its own events are handled
	if !ws.sendEvent(webEventRegister{Client: client}) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (ws *webShell) handleExport(c *gin.Context) {
	result := make(chan webExportResult, 1)
	if !ws.sendEvent(webEventExport{Format: c.Param("format"), Result: result}) {
		c.String(http.StatusServiceUnavailable, "Editor is closed")
		return
	}

	var res webExportResult
	select {
	case res = <-result:
	case <-ws.quit:
		c.String(http.StatusServiceUnavailable, "Editor is closed")
		return
	}

	if res.Err != nil {
		log.Warnf("Can't export %v: %v", c.Param("format"), res.Err)
		c.String(http.StatusBadRequest, res.Err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(res.Document.FileName))
	c.Data(http.StatusOK, res.Document.MIMEType, res.Document.Data)
}

// A single browser connection. It forwards editor changes to the browser.
type webClient struct {
	Shell *webShell
	Conn  *websocket.Conn
	Send  chan []byte // Closed by the editor goroutine
}

func (wc *webClient) readPump() {
	defer func() {
		wc.Shell.sendEvent(webEventUnregister{Client: wc})
		wc.Conn.Close()
	}()

	wc.Conn.SetReadLimit(webMaxMessageSize)
	wc.Conn.SetReadDeadline(time.Now().Add(webPongWait))
	wc.Conn.SetPongHandler(func(string) error {
		wc.Conn.SetReadDeadline(time.Now().Add(webPongWait))
		return nil
	})

	for {
		_, data, err := wc.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warnf("Websocket read error: %v", err)
			}
			return
		}

		var msg webMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debugf("Can't parse websocket message: %v", err)
			continue
		}

		if !wc.Shell.sendEvent(webEventMessage{Client: wc, Message: msg}) {
			return
		}
	}
}

func (wc *webClient) writePump() {
	ticker := time.NewTicker(webPingPeriod)
	defer func() {
		ticker.Stop()
		wc.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-wc.Send:
			wc.Conn.SetWriteDeadline(time.Now().Add(webWriteWait))
			if !ok {
				wc.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wc.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debugf("Can't write to websocket: %v", err)
				return
			}
		case <-ticker.C:
			wc.Conn.SetWriteDeadline(time.Now().Add(webWriteWait))
			if err := wc.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Queues a JSON message. Messages are dropped if the client can't keep up.
func (wc *webClient) sendJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("Error marshalling json: %v", err)
	}

	select {
	case wc.Send <- b:
	default:
		return fmt.Errorf("Send buffer is full, dropped message")
	}

	return nil
}

func (wc *webClient) sendError(err error) {
	wc.sendJSON(struct {
		Type    string
		Message string
	}{
		"Error",
		err.Error(),
	})
}

func (wc *webClient) handleGridReset(size int, cells []cell) error {
	colors := make([]string, 0, len(cells))
	for _, c := range cells {
		colors = append(colors, c.cssColor())
	}

	return wc.sendJSON(struct {
		Type   string
		Size   int
		Sizes  []int
		Colors []string // CSS color of every cell, row-major
	}{
		"GridReset",
		size,
		wc.Shell.Config.GridSizes,
		colors,
	})
}

func (wc *webClient) handleCellChange(index int, c cell) error {
	return wc.sendJSON(struct {
		Type  string
		Index int
		State string
		Color string
	}{
		"SetCell",
		index,
		c.State.String(),
		c.cssColor(),
	})
}

func (wc *webClient) handleRecentsChange(colors []paintColor) error {
	strs := make([]string, 0, len(colors))
	for _, col := range colors {
		strs = append(strs, col.String())
	}

	return wc.sendJSON(struct {
		Type   string
		Colors []string
	}{
		"Recents",
		strs,
	})
}

func (wc *webClient) handleToolChange(t tool, col paintColor) error {
	return wc.sendJSON(struct {
		Type  string
		Tool  string
		Color string
	}{
		"Tool",
		t.String(),
		col.String(),
	})
}
