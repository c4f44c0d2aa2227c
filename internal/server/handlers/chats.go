// Handles chat log listing.

package handlers

import (
	"context"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// ChatHandler handles chat log requests.
type ChatHandler struct {
	svc *Services
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// List returns a filtered, ranked, paginated chat log page.
func (h *ChatHandler) List(ctx context.Context, req *dto.ListChatsRequest) (*dto.ListChatsResponse, error) {
	filters := catalog.ChatFilters{
		Status:    req.Status,
		Sentiment: req.Sentiment,
	}
	page := h.svc.Chats.ResolveQuery(listToQuery(req.ListQuery, filters))
	data := make([]dto.ChatLogResponse, 0, len(page.Items))
	for _, c := range page.Items {
		data = append(data, chatToResponse(c))
	}
	return &dto.ListChatsResponse{Data: data, Meta: pageMeta(page)}, nil
}
