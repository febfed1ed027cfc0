package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"deskpilot/pkg/response"
)

type processCommandReq struct {
	Command string `json:"command" binding:"required"`
}

type processCommandResp struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	UsedLLM  bool   `json:"used_llm"`
}

// processCommand routes one command through the bridge and returns
// its outcome. A routing failure is still a 200; Success carries it.
func (srv *HTTPServer) processCommand(c *gin.Context) {
	ctx := c.Request.Context()

	var req processCommandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.l.Warnf(ctx, "invalid command request: %v", err)
		response.Error(c, errors.New("command is required"), nil)
		return
	}

	out := srv.processor.Process(ctx, req.Command)
	response.OK(c, processCommandResp{
		Response: out.Response,
		Success:  out.Success,
		UsedLLM:  out.UsedLLM,
	})
}

func (srv *HTTPServer) getStats(c *gin.Context) {
	response.OK(c, srv.processor.Stats())
}

func (srv *HTTPServer) clearConversation(c *gin.Context) {
	srv.processor.ClearHistory()
	response.OK(c, gin.H{"cleared": true})
}
