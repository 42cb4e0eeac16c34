package upload

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/facebookgo/grace/gracehttp"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heptiolabs/healthcheck"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/app/upload/api"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/cmdapp"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/saver"
	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/status"
)

const uploadedNamePrefix = "HOAudio_"

// FileSaver saves the uploaded file with the provided name
type FileSaver interface {
	Save(name string, reader io.Reader) error
	Path(name string) string
}

// StatusProvider provides the job status for polling clients
type StatusProvider interface {
	Get(ID string) (*api.TranscriptionResult, error)
}

// TranslationProvider translates text, degrading to a fallback payload
type TranslationProvider interface {
	Translate(ctx context.Context, text string, source string, target string) *api.TranslationResult
}

type serviceMetric struct {
	uploadResponseDur prometheus.ObserverVec
	uploadRequestSize prometheus.ObserverVec
	responseDur       prometheus.ObserverVec
}

// ServiceData keeps data required for service work
type ServiceData struct {
	FileSaver      FileSaver
	MessageSender  messages.Sender
	StatusSaver    status.Saver
	StatusProvider StatusProvider
	Translator     TranslationProvider

	EventChannelFunc eventChannelFunc

	Port    int
	health  healthcheck.Handler
	metrics serviceMetric
}

//StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {
	if data.EventChannelFunc != nil {
		quitChan := make(chan bool)
		defer close(quitChan)
		go registerQueue(data, quitChan, time.Second)
	}

	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)

	portStr := strconv.Itoa(data.Port)
	srv := http.Server{
		Addr:              ":" + portStr,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       180 * time.Second,
		Handler:           r,
	}

	w := cmdapp.Log.Writer()
	defer w.Close()
	l := log.New(w, "", 0)
	gracehttp.SetLogger(l)

	return gracehttp.Serve(&srv)
}

//NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	teh := promhttp.InstrumentHandlerDuration(data.metrics.uploadResponseDur,
		promhttp.InstrumentHandlerRequestSize(data.metrics.uploadRequestSize,
			transcribeHandler{data: data, profile: api.ProfileEnglish}))
	tgh := promhttp.InstrumentHandlerDuration(data.metrics.uploadResponseDur,
		promhttp.InstrumentHandlerRequestSize(data.metrics.uploadRequestSize,
			transcribeHandler{data: data, profile: api.ProfileGeorgian}))
	rh := promhttp.InstrumentHandlerDuration(data.metrics.responseDur, resultHandler{data: data})
	trh := promhttp.InstrumentHandlerDuration(data.metrics.responseDur, translateHandler{data: data})
	router.Methods("POST").Path("/transcribe/").Handler(teh)
	router.Methods("POST").Path("/transcribe-georgian/").Handler(tgh)
	router.Methods("GET").Path("/result/{task_id}").Handler(rh)
	router.Methods("POST").Path("/translate/").Handler(trh)
	router.Methods("GET").Path("/").Handler(rootHandler{})
	router.Handle("/subscribe", websocketHandler{data: data})
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
	router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	return router
}

type transcribeHandler struct {
	data    *ServiceData
	profile string
}

func (h transcribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Saving file from %s", r.Host)

	err := r.ParseMultipartForm(32 << 20)
	if err != nil {
		setError(w, "Can't parse MultipartForm", http.StatusBadRequest)
		cmdapp.Log.Error(errors.Wrap(err, "Can't parse MultipartForm"))
		return
	}
	defer cleanFiles(r.MultipartForm)

	file, handler, err := r.FormFile(api.PrmFile)
	if err != nil {
		setError(w, "No file", http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}
	defer file.Close()

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(handler.Filename))
	fileName := uploadedNamePrefix + id + ext

	err = h.data.FileSaver.Save(fileName, file)
	if err != nil {
		if errors.Is(err, saver.ErrTooLarge) {
			setError(w, "File too large", http.StatusRequestEntityTooLarge)
		} else {
			setError(w, "Can not save file", http.StatusInternalServerError)
		}
		cmdapp.Log.Error(err)
		return
	}

	err = h.data.StatusSaver.Save(id, status.Pending)
	if err != nil {
		setError(w, "Can not save status", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}

	msg := messages.NewTranscriptionMessage(id, h.data.FileSaver.Path(fileName), h.profile)
	err = h.data.MessageSender.Send(msg, messages.Transcribe)
	if err != nil {
		setError(w, "Can not send transcribe message", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}

	writeJSON(w, &api.TaskResult{TaskID: id, Message: taskMessage(h.profile)})
}

func taskMessage(profile string) string {
	if profile == api.ProfileGeorgian {
		return "Georgian transcription in progress. Use /result/{task_id} to fetch the result."
	}
	return "Transcription in progress. Use /result/{task_id} to fetch the result."
}

type resultHandler struct {
	data *ServiceData
}

func (h resultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Request from %s", r.Host)

	id := mux.Vars(r)["task_id"]
	if id == "" {
		setError(w, "No task ID", http.StatusBadRequest)
		cmdapp.Log.Errorf("No task ID")
		return
	}

	result, err := h.data.StatusProvider.Get(id)
	if err != nil {
		setError(w, "Cannot get status for ID: "+id, http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}
	writeJSON(w, result)
}

type translateHandler struct {
	data *ServiceData
}

func (h translateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Translate request from %s", r.Host)

	var request api.TranslationRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		setError(w, "Can't decode request", http.StatusBadRequest)
		cmdapp.Log.Error(err)
		return
	}
	if request.Text == "" {
		setError(w, "No text", http.StatusBadRequest)
		cmdapp.Log.Errorf("No text")
		return
	}

	result := h.data.Translator.Translate(r.Context(), request.Text,
		request.SourceLanguage, request.TargetLanguage)
	writeJSON(w, result)
}

type rootHandler struct {
}

func (h rootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"message": "Audio Transcription Service",
		"endpoints": map[string]string{
			"transcribe_english":  "/transcribe/",
			"transcribe_georgian": "/transcribe-georgian/",
			"get_result":          "/result/{task_id}",
			"translate":           "/translate/",
		},
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(data)
	if err != nil {
		setError(w, "Can not prepare result", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
	}
}

func setError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func cleanFiles(f *multipart.Form) {
	if f != nil {
		f.RemoveAll()
	}
}
