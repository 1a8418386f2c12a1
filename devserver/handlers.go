package devserver

import (
	"net/http"
	"time"
)

func (s *Server) DashboardSummaryHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Dashboard())
	}
}

func (s *Server) DailyHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Daily())
	}
}

func (s *Server) PayrollJobsHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.PayrollJobs())
	}
}

type payrollExecuteRequest struct {
	TargetMonth string `json:"targetMonth"`
}

func (s *Server) PayrollExecuteHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payrollExecuteRequest
		if !readJSON(w, r, &req) {
			return
		}
		if _, err := time.Parse("2006-01", req.TargetMonth); err != nil {
			http.Error(w, "targetMonth must be in YYYY-MM format", http.StatusBadRequest)
			return
		}
		job := s.data.StartPayrollJob(req.TargetMonth, NowTimeFunc().UTC().Format(time.RFC3339))
		respondJSON(w, http.StatusCreated, job)
	}
}

func (s *Server) PayslipsHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		targetMonth := r.URL.Query().Get("targetMonth")
		if targetMonth == "" {
			http.Error(w, "targetMonth is required", http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusOK, s.data.Payslips(targetMonth))
	}
}
