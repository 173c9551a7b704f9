package records

// Recursos expuestos. El orden de Fields es el orden de columnas.
var (
	PetProfile = Schema{
		Resource: "petinfo",
		Table:    "pet_info",
		Entity:   "pet profile",
		Fields: []Field{
			{Name: "pet_name", Column: "pet_name", Type: TypeString, Required: true},
			{Name: "breed", Column: "breed", Type: TypeString, Required: true},
			{Name: "weight", Column: "weight", Type: TypeDecimal, Required: true},
			{Name: "age", Column: "age", Type: TypeInteger, Required: true},
		},
	}

	VetContact = Schema{
		Resource: "vet",
		Table:    "vet_info",
		Entity:   "vet contact",
		Fields: []Field{
			{Name: "hospital", Column: "hospital", Type: TypeString},
			{Name: "vetName", Column: "vet_name", Type: TypeString},
			{Name: "phoneNumber", Column: "phone_number", Type: TypeString},
			{Name: "address", Column: "address", Type: TypeString},
		},
	}

	Vaccination = Schema{
		Resource: "vaccines",
		Table:    "vaccinations",
		Entity:   "vaccination",
		Fields: []Field{
			{Name: "vaccineName", Column: "vaccine_name", Type: TypeString},
			{Name: "vaccineDate", Column: "vaccine_date", Type: TypeDate},
			{Name: "expires", Column: "expires", Type: TypeDate},
		},
	}

	Activity = Schema{
		Resource: "activity",
		Table:    "activity_tracker",
		Entity:   "activity",
		Fields: []Field{
			{Name: "activityType", Column: "activity_type", Type: TypeString},
			{Name: "startOrStop", Column: "start_or_stop", Type: TypeEnum, Enum: []string{"start", "stop"}},
			{Name: "notes", Column: "notes", Type: TypeString},
		},
	}

	Diet = Schema{
		Resource: "diet",
		Table:    "diet_tracker",
		Entity:   "diet",
		Fields: []Field{
			{Name: "mealType", Column: "meal_type", Type: TypeString},
			{Name: "notes", Column: "notes", Type: TypeString},
		},
	}

	Potty = Schema{
		Resource: "potty",
		Table:    "potty_tracker",
		Entity:   "potty",
		Fields: []Field{
			{Name: "pottyType", Column: "potty_type", Type: TypeString},
			{Name: "notes", Column: "notes", Type: TypeString},
		},
	}

	Hygiene = Schema{
		Resource: "hygiene",
		Table:    "hygiene",
		Entity:   "hygiene",
		Fields: []Field{
			{Name: "hygieneType", Column: "hygiene_type", Type: TypeString},
			{Name: "notes", Column: "notes", Type: TypeString},
		},
	}
)

// Catalog devuelve los siete recursos en el orden en que se montan.
func Catalog() []Schema {
	return []Schema{PetProfile, VetContact, Vaccination, Activity, Diet, Potty, Hygiene}
}
