package metadomain

// Action é uma entrada tipada de conversão retornada pela plataforma
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// PurchaseActionType é o código fixo da ação de compra usado para extrair o ROAS
const PurchaseActionType = "omni_purchase"

// AdInsight é uma linha bruta de insights no nível de anúncio, exatamente
// como retornada pela plataforma. Efêmera: existe apenas durante uma extração.
type AdInsight struct {
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`

	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`

	Actions      []Action `json:"actions"`
	PurchaseROAS []Action `json:"purchase_roas"`

	// Valores de breakdown, presentes apenas quando a dimensão foi solicitada
	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	Region            string `json:"region,omitempty"`

	// Campos visuais, mesclados na segunda fase da extração
	AdImage    string `json:"-"`
	AdHeadline string `json:"-"`
}

// BreakdownValue retorna o valor do campo bruto de breakdown pelo nome da plataforma
func (i *AdInsight) BreakdownValue(platformField string) string {
	switch platformField {
	case "age":
		return i.Age
	case "gender":
		return i.Gender
	case "publisher_platform":
		return i.PublisherPlatform
	case "region":
		return i.Region
	}
	return ""
}

// Creative são os metadados visuais de um anúncio
type Creative struct {
	ThumbnailURL string `json:"thumbnail_url"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
}

// ImageOrThumbnail retorna a melhor referência de imagem disponível.
// A plataforma devolve thumbnail_url para vídeos e image_url para estáticos.
func (c Creative) ImageOrThumbnail() string {
	if c.ThumbnailURL != "" {
		return c.ThumbnailURL
	}
	return c.ImageURL
}

// AdWithCreative é o contêiner retornado pela consulta de criativos em lote
type AdWithCreative struct {
	ID       string   `json:"id"`
	Creative Creative `json:"creative"`
}
