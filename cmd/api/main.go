package main

import (
	"os"
)

// @title Pet Care Tracker API
// @version 1.0
// @description Registro de perfil, veterinaria, vacunas, actividad, dieta, baño y higiene de mascotas.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
