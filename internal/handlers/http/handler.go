package http

import (
	"fmt"
	"net/http"

	"RestoReservasi/internal/payment"
	"RestoReservasi/internal/version"
	"RestoReservasi/pkg/logging"

	"github.com/julienschmidt/httprouter"
)

// NewRouter serves the redirect targets of the hosted payment page.
func NewRouter(widget *payment.CallbackWidget) *httprouter.Router {
	router := httprouter.New()
	router.GET("/", HandlerOtherAll)
	router.GET("/payment/:token/:outcome", HandlerPaymentCallback(widget))
	router.POST("/payment/:token/:outcome", HandlerPaymentCallback(widget))
	return router
}

func HandlerOtherAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()
	logger.Debug("Start HandlerOtherAll")
	defer logger.Debug("End HandlerOtherAll")

	v := version.GetVersion()
	_, err := fmt.Fprintf(w, "Version %s", v.String())
	if err != nil {
		logger.Errorf("failed to send response, error: %v", err)
		return
	}
}

func HandlerPaymentCallback(widget *payment.CallbackWidget) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		logger := logging.GetLogger()
		logger.Info("Start HandlerPaymentCallback")
		defer logger.Info("End HandlerPaymentCallback")

		if err := r.ParseForm(); err != nil {
			logger.Errorf("failed r.ParseForm(), error: %v", err)
			http.Error(w, "Error", http.StatusBadRequest)
			return
		}
		logger.Debug("URL\n\t", r.URL)
		logger.Debug("Form\n\t", r.Form)

		token := ps.ByName("token")
		outcome, ok := payment.ParseOutcome(ps.ByName("outcome"))
		if !ok {
			http.Error(w, "unknown outcome", http.StatusBadRequest)
			return
		}
		if status := r.Form.Get("transaction_status"); status != "" {
			if o, ok := payment.ParseOutcome(status); ok {
				outcome = o
			}
		}

		payload := map[string]interface{}{}
		for k := range r.Form {
			payload[k] = r.Form.Get(k)
		}

		if !widget.Deliver(token, outcome, payload) {
			http.Error(w, "unknown payment token", http.StatusNotFound)
			return
		}

		_, err := fmt.Fprintf(w, "Pembayaran %s. Anda dapat menutup halaman ini.", outcome.String())
		if err != nil {
			logger.Errorf("failed to send response, error: %v", err)
		}
	}
}
