package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/board-pagination/internal/service"
	"github.com/maxviazov/board-pagination/pkg/response"
)

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler { return &PostHandler{svc: svc} }

func (h *PostHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/posts")
	{
		g.POST("", h.create)
		g.GET("/:post_id", h.getByID)
		g.GET("", h.list)
	}
}

type createPostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (h *PostHandler) create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// parse details stay internal
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	post, err := h.svc.CreatePost(c.Request.Context(), req.Title, req.Author, req.Body)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, post)
}

func (h *PostHandler) getByID(c *gin.Context) {
	// unparseable ids become 0 and the service rejects them
	id, _ := strconv.ParseInt(c.Param("post_id"), 10, 64)
	post, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, post)
}

// list reads page, size and block from the query string. Missing or malformed
// values become 0, which the pagination layer replaces with its defaults.
func (h *PostHandler) list(c *gin.Context) {
	req := service.PageRequest{
		Page:  queryInt(c, "page"),
		Size:  queryInt(c, "size"),
		Block: queryInt(c, "block"),
	}
	res, err := h.svc.ListPosts(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}
