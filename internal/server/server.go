package server

import "bargain/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server объединяет HTTP серверы отдельных сущностей.
type Server struct {
	BargainServer
}

func NewServer(
	bargainServer BargainServer,
) Server {
	return Server{
		BargainServer: bargainServer,
	}
}
