package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// WriteOnlyConn 房间内的一个连接，AI 玩家使用只写的虚拟连接
type WriteOnlyConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// ReadWriteConn 真实客户端连接，支持读取消息
type ReadWriteConn interface {
	WriteOnlyConn
	ReadMessage() (messageType int, p []byte, err error)
}

// realConn gorilla 连接不支持并发写，广播和 AI 协程可能同时写同一个连接
type realConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (r *realConn) WriteMessage(messageType int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Conn.WriteMessage(messageType, data)
}

// PlayerConn 房间里的玩家连接
type PlayerConn struct {
	PlayerID string
	Conn     WriteOnlyConn
	Online   bool
}
