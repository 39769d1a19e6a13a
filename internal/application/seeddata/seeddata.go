// Package seeddata bundles the static fallback catalog for PILARES
// Mártires del 10 de junio. It seeds an empty database on first boot,
// backs the admin "restore" operation, and serves as the offline
// fallback when the database cannot be read.
package seeddata

import (
	"github.com/oto-ml/PILARES-web/internal/domain/course"
	"github.com/oto-ml/PILARES-web/internal/domain/workshop"
)

// Courses returns the static course catalog. Callers receive a fresh
// slice and may mutate it freely.
func Courses() []course.Course {
	return []course.Course{
		{
			ID:          "1",
			Title:       "Maestría en Retratos al Óleo",
			Instructor:  "Dra. Elena Vance",
			Category:    course.CategoryCultura,
			Price:       0,
			Description: "Explora las técnicas atemporales de los maestros flamencos. Este curso cubre teoría del color, anatomía y veladuras. Todo el material incluido de forma gratuita.",
			Image:       "https://images.unsplash.com/photo-1541963463532-d68292c34b19?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Weekday Evenings",
		},
		{
			ID:          "2",
			Title:       "Programación Web con Ruby",
			Instructor:  "Julian Thorne",
			Category:    course.CategoryCiberescuela,
			Price:       0,
			Description: "Una introducción profesional a la arquitectura backend enfocada en código elegante, legible y lógica robusta. Acceso gratuito a laboratorios.",
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Weekend Mornings",
		},
		{
			ID:          "3",
			Title:       "Yoga Hatha Avanzado",
			Instructor:  "Sarah Chen",
			Category:    course.CategoryPontePila,
			Price:       0,
			Description: "Eleva tu práctica a través de la alineación consciente y el trabajo de respiración. Enfoque en flexibilidad y fuerza. Sin costo de inscripción.",
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Intensive Workshops",
		},
		{
			ID:          "4",
			Title:       "Ciencia del Suelo Orgánico",
			Instructor:  "Marcus Bloom",
			Category:    course.CategoryCultura,
			Price:       0,
			Description: "Aprende los secretos de un huerto próspero entendiendo la compleja biología bajo tus pies. Incluye kit de prueba gratuito.",
			Image:       "https://images.unsplash.com/photo-1416870230247-d0201fb95189?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Weekend Mornings",
		},
		{
			ID:          "5",
			Title:       "Filosofía Griega Antigua",
			Instructor:  "Dr. Arthur Sterling",
			Category:    course.CategoryCultura,
			Price:       0,
			Description: "Sumérgete en los cimientos del pensamiento occidental, desde Sócrates hasta Aristóteles. Ética y lógica. Cupo gratuito limitado.",
			Image:       "https://images.unsplash.com/photo-1543269664-7eef42226a21?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Weekday Evenings",
		},
		{
			ID:          "6",
			Title:       "Taller de Escritura Creativa",
			Instructor:  "Maya Angelou Jr.",
			Category:    course.CategoryCultura,
			Price:       0,
			Description: "Desbloquea tu voz narrativa a través de ejercicios guiados, revisión por pares y crítica profesional. Programa gratuito PILARES.",
			Image:       "https://images.unsplash.com/photo-1455390582262-044cdead277a?auto=format&fit=crop&q=80&w=800",
			Schedule:    "Intensive Workshops",
		},
	}
}

// Sessions returns the static weekly workshop schedule.
func Sessions() []workshop.Session {
	return []workshop.Session{
		{ID: "w1", Day: 0, Hour: 8, Title: "Yoga Despertar", Category: workshop.CategoryPontePila, TimeString: "08:00 - 09:30", Type: workshop.TypePrimary},
		{ID: "w2", Day: 0, Hour: 8, Title: "Inglés Técnico", Category: workshop.CategoryCiberescuela, TimeString: "08:30 - 10:00", Type: workshop.TypeMuted},
		{ID: "w3", Day: 0, Hour: 16, Title: "Francés Nivel I", Category: workshop.CategoryCultura, TimeString: "16:00 - 18:00", Type: workshop.TypeMuted},
		{ID: "w4", Day: 0, Hour: 16, Title: "Robótica", Category: workshop.CategoryCiberescuela, TimeString: "16:00 - 17:30", Type: workshop.TypePrimary},
		{ID: "w5", Day: 1, Hour: 10, Title: "Cartonería", Category: workshop.CategoryCultura, TimeString: "10:00 - 12:00", Type: workshop.TypePrimary},
		{ID: "w6", Day: 1, Hour: 10, Title: "Guitarra", Category: workshop.CategoryCultura, TimeString: "10:00 - 11:30", Type: workshop.TypeGold},
		{ID: "w7", Day: 1, Hour: 18, Title: "Defensa Personal", Category: workshop.CategoryPontePila, TimeString: "18:00 - 19:30", Type: workshop.TypePrimary},
		{ID: "w8", Day: 2, Hour: 8, Title: "Apoyo Escolar", Category: workshop.CategoryCiberescuela, TimeString: "08:00 - 10:00", Type: workshop.TypeMuted},
		{ID: "w9", Day: 2, Hour: 16, Title: "Alfarería", Category: workshop.CategoryCultura, TimeString: "16:00 - 18:30", Type: workshop.TypePrimary, Seats: "3 LUGARES"},
		{ID: "w10", Day: 3, Hour: 12, Title: "Acuarelas", Category: workshop.CategoryCultura, TimeString: "12:00 - 14:00", Type: workshop.TypePrimary},
		{ID: "w11", Day: 3, Hour: 14, Title: "Huertos Urbanos", Category: workshop.CategoryCultura, TimeString: "14:00 - 16:00", Type: workshop.TypeGold},
		{ID: "w12", Day: 4, Hour: 8, Title: "Zumba", Category: workshop.CategoryPontePila, TimeString: "08:00 - 09:00", Type: workshop.TypePrimary},
		{ID: "w13", Day: 4, Hour: 12, Title: "Cocina Saludable", Category: workshop.CategoryDestacado, TimeString: "12:00 - 14:00", Type: workshop.TypeGold},
		{ID: "w14", Day: 4, Hour: 16, Title: "Gala de Baile", Category: workshop.CategoryDestacado, TimeString: "16:30 - 19:00", Type: workshop.TypeGold},
	}
}
