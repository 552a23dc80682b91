package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySearchPlaceholder   = "search_placeholder"
	KeySearch              = "search"
	KeyGetRecommendations  = "get_recommendations"
	KeyViewFavorites       = "view_favorites"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyAPIKey              = "api_key"
	KeyTheme               = "theme"
	KeyUniqueFavorites     = "unique_favorites"
	KeyOpenDataFolder      = "open_data_folder"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyAddToFavorites      = "add_to_favorites"
	KeyRemoveFromFavorites = "remove_from_favorites"
	KeyRating              = "rating"
	KeyNotRated            = "not_rated"
	KeyNoMoviesFound       = "no_movies_found"
	KeyNoFavorites         = "no_favorites"
	KeyCatalogUnavailable  = "catalog_unavailable"
	KeyCatalogUnauthorized = "catalog_unauthorized"
	KeyWarning             = "warning"
	KeySuccess             = "success"
	KeyPleaseEnterSearch   = "please_enter_search"
	KeyAddedToFavorites    = "added_to_favorites"
	KeyRemovedFavorite     = "removed_from_favorites"
	KeySettingsSaved       = "settings_saved"
	KeySettingsUpdated     = "settings_updated"
	KeyGenre               = "genre"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Movie Recommendation System",
		KeySearchPlaceholder:   "Search for a movie...",
		KeySearch:              "Search",
		KeyGetRecommendations:  "Get Recommendations",
		KeyViewFavorites:       "View Favorites",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyAPIKey:              "API Key",
		KeyTheme:               "Theme",
		KeyUniqueFavorites:     "Keep one entry per favorite title",
		KeyOpenDataFolder:      "Show data folder",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyAddToFavorites:      "Add to Favorites",
		KeyRemoveFromFavorites: "Remove from Favorites",
		KeyRating:              "Rating: %s",
		KeyNotRated:            "Not Rated",
		KeyNoMoviesFound:       "No movies found.",
		KeyNoFavorites:         "No favorites added yet.",
		KeyCatalogUnavailable:  "Could not reach the movie catalog.",
		KeyCatalogUnauthorized: "The movie catalog rejected the API key. Check Settings.",
		KeyWarning:             "Warning",
		KeySuccess:             "Success",
		KeyPleaseEnterSearch:   "Please enter a search term.",
		KeyAddedToFavorites:    "'%s' added to favorites!",
		KeyRemovedFavorite:     "'%s' removed from favorites!",
		KeySettingsSaved:       "Settings Saved",
		KeySettingsUpdated:     "Settings have been updated.",
		KeyGenre:               "Genre",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Система рекомендаций фильмов",
		KeySearchPlaceholder:   "Найти фильм...",
		KeySearch:              "Поиск",
		KeyGetRecommendations:  "Получить рекомендации",
		KeyViewFavorites:       "Избранное",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyAPIKey:              "Ключ API",
		KeyTheme:               "Тема",
		KeyUniqueFavorites:     "Хранить одну запись на название",
		KeyOpenDataFolder:      "Показать папку данных",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyAddToFavorites:      "В избранное",
		KeyRemoveFromFavorites: "Убрать из избранного",
		KeyRating:              "Рейтинг: %s",
		KeyNotRated:            "Без оценки",
		KeyNoMoviesFound:       "Фильмы не найдены.",
		KeyNoFavorites:         "В избранном пока пусто.",
		KeyCatalogUnavailable:  "Не удалось связаться с каталогом фильмов.",
		KeyCatalogUnauthorized: "Каталог отклонил ключ API. Проверьте настройки.",
		KeyWarning:             "Внимание",
		KeySuccess:             "Готово",
		KeyPleaseEnterSearch:   "Введите поисковый запрос.",
		KeyAddedToFavorites:    "«%s» добавлен в избранное!",
		KeyRemovedFavorite:     "«%s» удалён из избранного!",
		KeySettingsSaved:       "Настройки сохранены",
		KeySettingsUpdated:     "Настройки обновлены.",
		KeyGenre:               "Жанр",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Sistema de Recomendação de Filmes",
		KeySearchPlaceholder:   "Pesquisar um filme...",
		KeySearch:              "Pesquisar",
		KeyGetRecommendations:  "Obter Recomendações",
		KeyViewFavorites:       "Ver Favoritos",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyAPIKey:              "Chave da API",
		KeyTheme:               "Tema",
		KeyUniqueFavorites:     "Manter uma entrada por título favorito",
		KeyOpenDataFolder:      "Mostrar pasta de dados",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyAddToFavorites:      "Adicionar aos Favoritos",
		KeyRemoveFromFavorites: "Remover dos Favoritos",
		KeyRating:              "Nota: %s",
		KeyNotRated:            "Sem nota",
		KeyNoMoviesFound:       "Nenhum filme encontrado.",
		KeyNoFavorites:         "Nenhum favorito adicionado ainda.",
		KeyCatalogUnavailable:  "Não foi possível acessar o catálogo de filmes.",
		KeyCatalogUnauthorized: "O catálogo rejeitou a chave da API. Verifique as Configurações.",
		KeyWarning:             "Aviso",
		KeySuccess:             "Sucesso",
		KeyPleaseEnterSearch:   "Digite um termo de pesquisa.",
		KeyAddedToFavorites:    "'%s' adicionado aos favoritos!",
		KeyRemovedFavorite:     "'%s' removido dos favoritos!",
		KeySettingsSaved:       "Configurações Salvas",
		KeySettingsUpdated:     "As configurações foram atualizadas.",
		KeyGenre:               "Gênero",
	}
}
