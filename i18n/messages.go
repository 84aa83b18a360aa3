package i18n

var messages = map[Lang]map[string]string{
	EN: {
		"INVALID_CREDENTIALS":    "Invalid credentials",
		"EMAIL_IN_USE":           "Email already used",
		"UNAUTHORIZED":           "Unauthorized",
		"FORBIDDEN":              "Forbidden",
		"TOKEN_EXPIRED":          "Token expired",
		"TOKEN_INVALID":          "Invalid token",
		"RESTAURANT_NOT_FOUND":   "Restaurant not found",
		"REVIEW_NOT_FOUND":       "Review not found",
		"USER_NOT_FOUND":         "User not found",
		"TOO_MANY_REQUESTS":      "Too many requests, please try again later",
		"RATE_LIMIT_AUTH":        "Too many login attempts, please try again later",
		"INTERNAL_ERROR":         "Internal server error",
		"ADMIN_STATS_ERROR":      "Failed to load admin statistics",
		"ALREADY_FAVORITE":       "Already added to favorites",
		"ALREADY_REVIEWED":       "You have already submitted a review for this restaurant",
		"VALIDATION_ERROR":       "Validation error",
		"INVALID_PAYLOAD":        "Invalid payload",
		"INVALID_JSON":           "Invalid JSON body",
		"INVALID_EMAIL":          "Email is not valid",
		"PASSWORD_REQUIRED":      "Password is required",
		"PASSWORD_TOO_SHORT":     "Password must be at least 8 characters",
		"PASSWORD_TOO_LONG":      "Password cannot exceed 128 characters",
		"PASSWORD_UPPERCASE_REQUIRED": "Password must contain an uppercase letter",
		"PASSWORD_LOWERCASE_REQUIRED": "Password must contain a lowercase letter",
		"PASSWORD_NUMBER_REQUIRED":    "Password must contain a number",
		"NAME_REQUIRED":          "Name is required",
		"NAME_TOO_LONG":          "Name cannot exceed 200 characters",
		"INVALID_PAGE":           "Invalid page number",
		"INVALID_LIMIT":          "Invalid limit",
		"INVALID_RATING":         "Rating must be a number",
		"RATING_MIN":             "Rating cannot be lower than 1",
		"RATING_MAX":             "Rating cannot be higher than 5",
		"INVALID_SORT":           "Invalid sort format",
		"INVALID_LAT":            "Invalid latitude",
		"INVALID_LNG":            "Invalid longitude",
		"INVALID_DAY":            "Invalid day",
		"INVALID_HOURS":          "Invalid hours format",
		"INVALID_RESTAURANT_ID":  "Invalid restaurant ID",
		"INVALID_REVIEW_ID":      "Invalid review ID",
		"COMMENTS_TOO_LONG":      "Comments cannot exceed 5000 characters",
		"NEIGHBORHOOD_TOO_LONG":  "Neighborhood cannot exceed 100 characters",
		"CUISINE_TYPE_TOO_LONG":  "Cuisine type cannot exceed 100 characters",
		"ADDRESS_TOO_LONG":       "Address cannot exceed 500 characters",
		"PHOTOGRAPH_TOO_LONG":    "Photograph URL cannot exceed 1000 characters",
		"IMAGE_TOO_LONG":         "Image URL cannot exceed 1000 characters",
	},
	ES: {
		"INVALID_CREDENTIALS":    "Credenciales inválidas",
		"EMAIL_IN_USE":           "El email ya está en uso",
		"UNAUTHORIZED":           "No autorizado",
		"FORBIDDEN":              "Prohibido",
		"TOKEN_EXPIRED":          "Token caducado",
		"TOKEN_INVALID":          "Token inválido",
		"RESTAURANT_NOT_FOUND":   "Restaurante no encontrado",
		"REVIEW_NOT_FOUND":       "Reseña no encontrada",
		"USER_NOT_FOUND":         "Usuario no encontrado",
		"TOO_MANY_REQUESTS":      "Demasiadas peticiones, inténtalo de nuevo más tarde",
		"RATE_LIMIT_AUTH":        "Demasiados intentos de login, inténtalo más tarde",
		"INTERNAL_ERROR":         "Error interno del servidor",
		"ADMIN_STATS_ERROR":      "No se pudieron cargar las estadísticas de administración",
		"ALREADY_FAVORITE":       "Ya está en favoritos",
		"ALREADY_REVIEWED":       "Ya has enviado una reseña para este restaurante",
		"VALIDATION_ERROR":       "Error de validación",
		"INVALID_PAYLOAD":        "Payload inválido",
		"INVALID_JSON":           "Cuerpo JSON inválido",
		"INVALID_EMAIL":          "El email no es válido",
		"PASSWORD_REQUIRED":      "La contraseña es obligatoria",
		"PASSWORD_TOO_SHORT":     "La contraseña debe tener al menos 8 caracteres",
		"PASSWORD_TOO_LONG":      "La contraseña no puede exceder 128 caracteres",
		"PASSWORD_UPPERCASE_REQUIRED": "La contraseña debe contener una mayúscula",
		"PASSWORD_LOWERCASE_REQUIRED": "La contraseña debe contener una minúscula",
		"PASSWORD_NUMBER_REQUIRED":    "La contraseña debe contener un número",
		"NAME_REQUIRED":          "El nombre es obligatorio",
		"NAME_TOO_LONG":          "El nombre no puede exceder 200 caracteres",
		"INVALID_PAGE":           "El número de página no es válido",
		"INVALID_LIMIT":          "El límite no es válido",
		"INVALID_RATING":         "El rating debe ser un número",
		"RATING_MIN":             "El rating no puede ser menor que 1",
		"RATING_MAX":             "El rating no puede ser mayor que 5",
		"INVALID_SORT":           "El formato de ordenación es inválido",
		"INVALID_LAT":            "Latitud inválida",
		"INVALID_LNG":            "Longitud inválida",
		"INVALID_DAY":            "Día inválido",
		"INVALID_HOURS":          "Formato de horas inválido",
		"INVALID_RESTAURANT_ID":  "ID de restaurante inválido",
		"INVALID_REVIEW_ID":      "ID de reseña inválido",
		"COMMENTS_TOO_LONG":      "Los comentarios no pueden exceder 5000 caracteres",
		"NEIGHBORHOOD_TOO_LONG":  "El barrio no puede exceder 100 caracteres",
		"CUISINE_TYPE_TOO_LONG":  "El tipo de cocina no puede exceder 100 caracteres",
		"ADDRESS_TOO_LONG":       "La dirección no puede exceder 500 caracteres",
		"PHOTOGRAPH_TOO_LONG":    "La URL de la fotografía no puede exceder 1000 caracteres",
		"IMAGE_TOO_LONG":         "La URL de la imagen no puede exceder 1000 caracteres",
	},
	FR: {
		"INVALID_CREDENTIALS":    "Identifiants invalides",
		"EMAIL_IN_USE":           "L'email est déjà utilisé",
		"UNAUTHORIZED":           "Non autorisé",
		"FORBIDDEN":              "Interdit",
		"TOKEN_EXPIRED":          "Jeton expiré",
		"TOKEN_INVALID":          "Jeton invalide",
		"RESTAURANT_NOT_FOUND":   "Restaurant introuvable",
		"REVIEW_NOT_FOUND":       "Avis introuvable",
		"USER_NOT_FOUND":         "Utilisateur introuvable",
		"TOO_MANY_REQUESTS":      "Trop de requêtes, réessayez plus tard",
		"RATE_LIMIT_AUTH":        "Trop de tentatives de connexion, réessayez plus tard",
		"INTERNAL_ERROR":         "Erreur interne du serveur",
		"ADMIN_STATS_ERROR":      "Impossible de charger les statistiques d'administration",
		"ALREADY_FAVORITE":       "Déjà dans les favoris",
		"ALREADY_REVIEWED":       "Vous avez déjà déposé un avis pour ce restaurant",
		"VALIDATION_ERROR":       "Erreur de validation",
		"INVALID_PAYLOAD":        "Données invalides",
		"INVALID_JSON":           "Corps JSON invalide",
		"INVALID_EMAIL":          "L'email n'est pas valide",
		"PASSWORD_REQUIRED":      "Le mot de passe est obligatoire",
		"PASSWORD_TOO_SHORT":     "Le mot de passe doit contenir au moins 8 caractères",
		"PASSWORD_TOO_LONG":      "Le mot de passe ne peut pas dépasser 128 caractères",
		"PASSWORD_UPPERCASE_REQUIRED": "Le mot de passe doit contenir une majuscule",
		"PASSWORD_LOWERCASE_REQUIRED": "Le mot de passe doit contenir une minuscule",
		"PASSWORD_NUMBER_REQUIRED":    "Le mot de passe doit contenir un chiffre",
		"NAME_REQUIRED":          "Le nom est obligatoire",
		"NAME_TOO_LONG":          "Le nom ne peut pas dépasser 200 caractères",
		"INVALID_PAGE":           "Numéro de page invalide",
		"INVALID_LIMIT":          "Limite invalide",
		"INVALID_RATING":         "La note doit être un nombre",
		"RATING_MIN":             "La note ne peut pas être inférieure à 1",
		"RATING_MAX":             "La note ne peut pas dépasser 5",
		"INVALID_SORT":           "Format de tri invalide",
		"INVALID_LAT":            "Latitude invalide",
		"INVALID_LNG":            "Longitude invalide",
		"INVALID_DAY":            "Jour invalide",
		"INVALID_HOURS":          "Format horaire invalide",
		"INVALID_RESTAURANT_ID":  "ID de restaurant invalide",
		"INVALID_REVIEW_ID":      "ID d'avis invalide",
		"COMMENTS_TOO_LONG":      "Les commentaires ne peuvent pas dépasser 5000 caractères",
		"NEIGHBORHOOD_TOO_LONG":  "Le quartier ne peut pas dépasser 100 caractères",
		"CUISINE_TYPE_TOO_LONG":  "Le type de cuisine ne peut pas dépasser 100 caractères",
		"ADDRESS_TOO_LONG":       "L'adresse ne peut pas dépasser 500 caractères",
		"PHOTOGRAPH_TOO_LONG":    "L'URL de la photographie ne peut pas dépasser 1000 caractères",
		"IMAGE_TOO_LONG":         "L'URL de l'image ne peut pas dépasser 1000 caractères",
	},
}
