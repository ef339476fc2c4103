package routes

import (
	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	"github.com/krushnasaruk55/medflow-pro-6.0/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.AuthPrivate(r)
	controllers.Hospital(r)
	controllers.User(r)
	controllers.Patient(r)
	controllers.Vital(r)
	controllers.LabTest(r)
	controllers.Inventory(r)
	controllers.Appointment(r)
	controllers.Template(r)
	controllers.Report(r)
}
