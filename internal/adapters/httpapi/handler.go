package httpapi

import (
	"encoding/base64"
	"net/http"
	"strings"

	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/input"
	"cropguru/internal/ports/output"
)

// Handler translates HTTP requests into use-case calls. It performs all
// boundary validation so the services only ever see valid identifiers.
type Handler struct {
	nav      input.NavigationUseCase
	locales  input.LocalizationUseCase
	advisory input.AdvisoryUseCase
	auth     output.AuthProvider
}

func NewHandler(nav input.NavigationUseCase, locales input.LocalizationUseCase, advisory input.AdvisoryUseCase, auth output.AuthProvider) *Handler {
	return &Handler{nav: nav, locales: locales, advisory: advisory, auth: auth}
}

// Routes registers every endpoint on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/state", h.handleState)
	mux.HandleFunc("POST /api/navigate", h.handleNavigate)

	mux.HandleFunc("GET /api/locales", h.handleListLocales)
	mux.HandleFunc("POST /api/locale", h.handleSetLocale)
	mux.HandleFunc("GET /api/translate", h.handleTranslate)

	mux.HandleFunc("POST /api/auth/signup", h.handleSignUp)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	mux.HandleFunc("POST /api/predict", h.handlePredict)
	mux.HandleFunc("POST /api/disease", h.handleDisease)
	mux.HandleFunc("POST /api/crops/recommend", h.handleRecommendCrop)
	mux.HandleFunc("POST /api/satellite/analyze", h.handleAnalyzeField)
	mux.HandleFunc("POST /api/fertilizer/compare", h.handleCompareFertilizers)
	mux.HandleFunc("POST /api/fertilizer/nutrient", h.handleNutrientGuide)
	mux.HandleFunc("POST /api/chat", h.handleChat)
	mux.HandleFunc("GET /api/schemes", h.handleSchemes)
	mux.HandleFunc("GET /api/weather", h.handleWeather)
}

type stateResponse struct {
	CurrentPage   string `json:"currentPage"`
	PendingTarget string `json:"pendingTarget,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Locale        string `json:"locale"`
	Title         string `json:"title"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	state := h.nav.State()
	locale := h.responseLocale(r)
	writeJSON(w, http.StatusOK, stateResponse{
		CurrentPage:   state.CurrentPage.String(),
		PendingTarget: state.PendingTarget.String(),
		Authenticated: h.nav.Authenticated(),
		Locale:        locale.String(),
		Title:         h.locales.ResolveIn(locale, state.CurrentPage.TitleKey(), nil),
	})
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Page string `json:"page"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	page, ok := entities.ParsePage(body.Page)
	if !ok {
		writeBadRequest(w, "unknown page: "+body.Page)
		return
	}

	h.nav.RequestNavigation(page)
	h.handleState(w, r)
}

type localeEntry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (h *Handler) handleListLocales(w http.ResponseWriter, r *http.Request) {
	active := h.locales.ActiveLocale()
	entries := make([]localeEntry, 0, len(entities.SupportedLocales))
	for _, l := range entities.SupportedLocales {
		entries = append(entries, localeEntry{Code: l.String(), Name: l.NativeName(), Active: l == active})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if _, ok := entities.ParseLocale(body.Code); !ok {
		writeBadRequest(w, "unsupported locale: "+body.Code)
		return
	}

	h.locales.SetLocale(r.Context(), body.Code)
	writeJSON(w, http.StatusOK, map[string]string{"locale": h.locales.ActiveLocale().String()})
}

// handleTranslate resolves a key with optional repeated param entries of the
// form param=name=value.
func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeBadRequest(w, "key is required")
		return
	}

	var params map[string]any
	for _, raw := range r.URL.Query()["param"] {
		name, value, found := strings.Cut(raw, "=")
		if !found {
			writeBadRequest(w, "malformed param: "+raw)
			return
		}
		if params == nil {
			params = make(map[string]any)
		}
		params[name] = value
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"key":  key,
		"text": h.locales.Resolve(key, params),
	})
}

type sessionResponse struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	session, err := h.auth.SignUp(r.Context(), body.Email, body.Password, body.FullName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		Email:     session.Email,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	session, err := h.auth.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Email:     session.Email,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.nav.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.handleState(w, r)
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CropType string  `json:"cropType"`
		SoilType string  `json:"soilType"`
		LandSize float64 `json:"landSize"`
		Location string  `json:"location"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	prediction, err := h.advisory.PredictYield(entities.YieldRequest{
		CropType: body.CropType,
		SoilType: body.SoilType,
		LandSize: body.LandSize,
		Location: body.Location,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

func (h *Handler) handleDisease(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image    string `json:"image"` // base64
		MimeType string `json:"mimeType"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	image, err := base64.StdEncoding.DecodeString(body.Image)
	if err != nil {
		writeBadRequest(w, "image must be base64 encoded")
		return
	}
	if body.MimeType == "" {
		body.MimeType = "image/jpeg"
	}

	result, err := h.advisory.DetectDisease(r.Context(), image, body.MimeType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRecommendCrop(w http.ResponseWriter, r *http.Request) {
	var body struct {
		State       string `json:"state"`
		District    string `json:"district"`
		SoilColor   string `json:"soilColor"`
		SoilTexture string `json:"soilTexture"`
		Rainfall    string `json:"rainfall"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rec, err := h.advisory.RecommendCrop(r.Context(), entities.CropQuery{
		State:       body.State,
		District:    body.District,
		SoilColor:   body.SoilColor,
		SoilTexture: body.SoilTexture,
		Rainfall:    body.Rainfall,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleAnalyzeField(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Location string `json:"location"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Location) == "" {
		writeBadRequest(w, "location is required")
		return
	}

	analysis, err := h.advisory.AnalyzeField(r.Context(), body.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) handleCompareFertilizers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductA string `json:"productA"`
		ProductB string `json:"productB"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(body.ProductA) == "" || strings.TrimSpace(body.ProductB) == "" {
		writeBadRequest(w, "two product names are required")
		return
	}

	comparison, err := h.advisory.CompareFertilizers(r.Context(), body.ProductA, body.ProductB)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

func (h *Handler) handleNutrientGuide(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Nutrient string `json:"nutrient"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Nutrient) == "" {
		writeBadRequest(w, "nutrient is required")
		return
	}

	guide, err := h.advisory.NutrientGuide(r.Context(), body.Nutrient)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		History []struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		} `json:"history"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	history := make([]entities.ChatMessage, 0, len(body.History))
	for _, msg := range body.History {
		history = append(history, entities.ChatMessage{Sender: msg.Sender, Text: msg.Text})
	}

	reply, err := h.advisory.Chat(r.Context(), history, body.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handler) handleSchemes(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	schemes, err := h.advisory.ListSchemes(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	categories, err := h.advisory.SchemeCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"schemes":    schemes,
		"categories": categories,
	})
}

func (h *Handler) handleWeather(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if strings.TrimSpace(location) == "" {
		writeBadRequest(w, "location is required")
		return
	}

	days, err := h.advisory.Forecast(r.Context(), location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// responseLocale is the active locale once one has been deliberately chosen;
// until then Accept-Language negotiates per request.
func (h *Handler) responseLocale(r *http.Request) entities.Locale {
	if header := r.Header.Get("Accept-Language"); header != "" && !h.locales.LocaleChosen() {
		return matchAcceptLanguage(header)
	}
	return h.locales.ActiveLocale()
}
