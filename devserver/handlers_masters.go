package devserver

import (
	"net/http"

	"github.com/paycanvas/console/api"
)

func (s *Server) EmployeesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Employees())
	}
}

func (s *Server) CreateEmployeeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload api.EmployeePayload
		if !readJSON(w, r, &payload) {
			return
		}
		respondJSON(w, http.StatusCreated, s.data.CreateEmployee(payload))
	}
}

func (s *Server) UpdateEmployeeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var payload api.EmployeePayload
		if !readJSON(w, r, &payload) {
			return
		}
		employee, err := s.data.UpdateEmployee(id, payload)
		if err != nil {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, employee)
	}
}

func (s *Server) DeleteEmployeeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := s.data.DeleteEmployee(id); err != nil {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) StoresHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Stores())
	}
}

func (s *Server) CreateStoreHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload api.StorePayload
		if !readJSON(w, r, &payload) {
			return
		}
		respondJSON(w, http.StatusCreated, s.data.CreateStore(payload))
	}
}

func (s *Server) UpdateStoreHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var payload api.StorePayload
		if !readJSON(w, r, &payload) {
			return
		}
		store, err := s.data.UpdateStore(id, payload)
		if err != nil {
			http.Error(w, "store not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, store)
	}
}

func (s *Server) DeleteStoreHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := s.data.DeleteStore(id); err != nil {
			http.Error(w, "store not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) GradesHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.Grades())
	}
}

func (s *Server) CreateGradeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload api.GradePayload
		if !readJSON(w, r, &payload) {
			return
		}
		respondJSON(w, http.StatusCreated, s.data.CreateGrade(payload))
	}
}

func (s *Server) UpdateGradeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var payload api.GradePayload
		if !readJSON(w, r, &payload) {
			return
		}
		grade, err := s.data.UpdateGrade(id, payload)
		if err != nil {
			http.Error(w, "grade not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, grade)
	}
}

func (s *Server) DeleteGradeHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := s.data.DeleteGrade(id); err != nil {
			http.Error(w, "grade not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SalaryTiersHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, s.data.SalaryTiers())
	}
}

func (s *Server) CreateSalaryTierHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload api.SalaryTierPayload
		if !readJSON(w, r, &payload) {
			return
		}
		respondJSON(w, http.StatusCreated, s.data.CreateSalaryTier(payload))
	}
}

func (s *Server) UpdateSalaryTierHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		var payload api.SalaryTierPayload
		if !readJSON(w, r, &payload) {
			return
		}
		tier, err := s.data.UpdateSalaryTier(id, payload)
		if err != nil {
			http.Error(w, "salary tier not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, tier)
	}
}

func (s *Server) DeleteSalaryTierHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		if err := s.data.DeleteSalaryTier(id); err != nil {
			http.Error(w, "salary tier not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
