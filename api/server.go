package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/project-blinc/blinc-animation/anim"
)

// Api serves runtime stats about the animation scheduler.
type Api struct {
	sched *anim.Scheduler
	addr  string
}

func NewApi(sched *anim.Scheduler, addr string) *Api {
	a := new(Api)
	a.sched = sched
	a.addr = addr
	return a
}

func (a *Api) Serve() {
	http.HandleFunc("/status", a.handleStatus)

	log.Println("Listening...")
	http.ListenAndServe(a.addr, nil)
}

func (a *Api) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Registered int  `json:"registered"`
		Active     bool `json:"active"`
	}{
		Registered: a.sched.Len(),
		Active:     a.sched.HasActiveAnimations(),
	})
}
