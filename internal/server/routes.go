package server

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solvelysaid/orderdesk/internal/chat"
	"github.com/solvelysaid/orderdesk/internal/menu"
	"github.com/solvelysaid/orderdesk/internal/models"
	"github.com/solvelysaid/orderdesk/internal/order"
)

// Error texts surfaced to the front end. The customer-facing UI is Thai, so
// these stay Thai regardless of the conversation language.
const (
	errNoText         = "ไม่มีข้อความ"
	errChatFailed     = "เกิดข้อผิดพลาดในการสนทนา"
	errNoFile         = "ไม่มีไฟล์ที่อัปโหลด"
	errProcessFailed  = "เกิดข้อผิดพลาดในการประมวลผล"
	errImageNotFound  = "ไม่พบรูปภาพ"
	errImageFailed    = "เกิดข้อผิดพลาดในการดึงรูปภาพ"
	errMenuIDRequired = "ต้องระบุ id เมนู"
	errMenuName       = "ต้องระบุชื่อเมนู"
	errOrderRequired  = "ต้องระบุ table_number และเมนูหรือสรุป"
	errOrderID        = "ต้องระบุ order_id"
	errOrderIDStatus  = "ต้องระบุ order_id และ status"
	errListFailed     = "เกิดข้อผิดพลาดในการดึงข้อมูล"
)

// defaultSessionID groups requests that carry no session id of their own.
const defaultSessionID = "default"

func (s *Server) registerRoutes(router *gin.Engine) {
	router.POST("/login", s.handleLogin)
	router.GET("/ping", s.handlePing)

	router.POST("/chat", s.handleChat)
	router.POST("/upload", s.handleUpload)

	router.GET("/menus", s.handleMenus)
	router.GET("/image/thumb/:name", s.handleImage(s.menus.ImageThumb))
	router.GET("/image/720p/:name", s.handleImage(s.menus.Image720p))
	router.POST("/menu/add", s.handleMenuAdd)
	router.POST("/menu/edit", s.handleMenuEdit)
	router.POST("/menu/delete", s.handleMenuDelete)
	router.POST("/menu/edit/batch", s.handleMenuEditBatch)

	router.POST("/order", s.handleOrderCreate)
	router.GET("/orders", s.handleOrders)
	router.POST("/order/delete", s.handleOrderDelete)
	router.POST("/order/status", s.handleOrderStatus)
	router.POST("/orders/cleanup", s.handleOrdersCleanup)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Password != s.password {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handlePing(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (s *Server) handleChat(c *gin.Context) {
	var req struct {
		Text      string `json:"text"`
		Language  string `json:"language"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoText})
		return
	}
	lang := req.Language
	if lang == "" {
		lang = chat.LangThai
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	reply, err := s.engine.Process(c.Request.Context(), sessionID, req.Text, lang)
	if err != nil {
		log.Printf("server: chat session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errChatFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoFile})
		return
	}
	lang := c.PostForm("language")
	if lang == "" {
		lang = chat.LangThai
	}
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		log.Printf("server: upload dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	tempPath := filepath.Join(s.uploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		log.Printf("server: save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	defer os.Remove(tempPath)

	text, err := s.transcriber.Transcribe(c.Request.Context(), tempPath, lang)
	if err != nil {
		log.Printf("server: transcribe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}

	reply, err := s.engine.Process(c.Request.Context(), sessionID, text, lang)
	if err != nil {
		log.Printf("server: upload chat session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}

	resp := gin.H{"text": text, "chat_response": reply}
	if matched, err := s.menus.Match(text); err != nil {
		log.Printf("server: menu match: %v", err)
	} else if matched != "" {
		resp["menu"] = matched
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleMenus(c *gin.Context) {
	menus, err := s.menus.List()
	if err != nil {
		log.Printf("server: list menus: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errListFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// handleImage serves one image variant by menu name.
func (s *Server) handleImage(lookup func(name string) ([]byte, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := lookup(c.Param("name"))
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errImageNotFound})
			return
		}
		if err != nil {
			log.Printf("server: image %s: %v", c.Param("name"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errImageFailed})
			return
		}
		c.Data(http.StatusOK, "image/jpeg", data)
	}
}

func (s *Server) handleMenuAdd(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMenuName})
		return
	}
	m := &models.Menu{
		Name:        name,
		Description: c.PostForm("description"),
	}
	if price, err := intForm(c, "price"); err == nil {
		m.Price = price
	}
	if file, err := c.FormFile("image"); err == nil {
		data, err := readUpload(file)
		if err != nil {
			log.Printf("server: menu image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
			return
		}
		// One uploaded image backs both variants; downscaling happens in
		// the admin front end before upload.
		m.ImageThumb = data
		m.Image720p = data
	}

	if err := s.menus.Insert(m); err != nil {
		log.Printf("server: menu add: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// menuEdit is one partial menu update in edit and batch-edit requests.
type menuEdit struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name"`
	Price       *int    `json:"price"`
	Description *string `json:"description"`
}

func (e menuEdit) fields() menu.UpdateFields {
	return menu.UpdateFields{Name: e.Name, Price: e.Price, Description: e.Description}
}

func (s *Server) handleMenuEdit(c *gin.Context) {
	var req menuEdit
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMenuIDRequired})
		return
	}
	if err := s.menus.Update(req.ID, req.fields()); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMenuIDRequired})
			return
		}
		log.Printf("server: menu edit %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleMenuDelete(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMenuIDRequired})
		return
	}
	if err := s.menus.Delete(req.ID); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMenuIDRequired})
			return
		}
		log.Printf("server: menu delete %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleMenuEditBatch(c *gin.Context) {
	var req struct {
		Menus []menuEdit `json:"menus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMenuIDRequired})
		return
	}
	// Entries without an id are skipped, matching single-edit validation.
	for _, m := range req.Menus {
		if m.ID == 0 {
			continue
		}
		if err := s.menus.Update(m.ID, m.fields()); err != nil && !errors.Is(err, menu.ErrNotFound) {
			log.Printf("server: menu batch edit %d: %v", m.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleOrderCreate(c *gin.Context) {
	var req struct {
		TableNumber string      `json:"table_number"`
		Menus       []chat.Item `json:"menus"`
		Summary     string      `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TableNumber == "" || (len(req.Menus) == 0 && req.Summary == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOrderRequired})
		return
	}

	o, err := s.orders.Create(req.TableNumber, req.Menus, req.Summary)
	if err != nil {
		log.Printf("server: order create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	s.notifier.OrderPlaced(c.Request.Context(), o)
	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": o.ID})
}

// orderView is the wire shape of an order with its items decoded.
type orderView struct {
	ID          string      `json:"id"`
	TableNumber string      `json:"table_number"`
	Menus       []chat.Item `json:"menus"`
	Summary     string      `json:"summary"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
}

func (s *Server) handleOrders(c *gin.Context) {
	orders, err := s.orders.List(c.Query("table_number"))
	if err != nil {
		log.Printf("server: list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errListFailed})
		return
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		items, err := order.Items(o)
		if err != nil {
			log.Printf("server: order %s: %v", o.ID, err)
		}
		views = append(views, orderView{
			ID:          o.ID,
			TableNumber: o.TableNumber,
			Menus:       items,
			Summary:     o.Summary,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (s *Server) handleOrderDelete(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOrderID})
		return
	}
	if err := s.orders.Delete(req.OrderID); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errOrderID})
			return
		}
		log.Printf("server: order delete %s: %v", req.OrderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleOrderStatus(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
		Status  string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOrderIDStatus})
		return
	}
	if err := s.orders.UpdateStatus(req.OrderID, req.Status); err != nil {
		switch {
		case errors.Is(err, order.ErrBadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": errOrderIDStatus})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errOrderID})
		default:
			log.Printf("server: order status %s: %v", req.OrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func intForm(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.PostForm(key))
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Server) handleOrdersCleanup(c *gin.Context) {
	deleted, err := s.orders.PurgeOlderThan(s.maxAge)
	if err != nil {
		log.Printf("server: cleanup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errProcessFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
