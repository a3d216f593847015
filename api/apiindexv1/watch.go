package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/gorilla/websocket"
)

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// watchIndex upgrades the connection and streams index events until
// the client goes away.
func watchIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	_, indexName, err := requireIndex(ctx)
	if err != nil {
		return err
	}

	conn, err := watchUpgrader.Upgrade(w, r, nil)
	if err != nil {
		box.GetResponse(ctx).WriteHeader(http.StatusBadRequest)
		return err
	}

	GetServicer(ctx).Watch().ServeConn(conn, indexName)

	return nil
}
