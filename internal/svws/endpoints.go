package svws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// Stammdaten is the school master data relevant to class generation.
type Stammdaten struct {
	Schulform              string `json:"schulform"`
	IDSchuljahresabschnitt int64  `json:"idSchuljahresabschnitt"`
}

// SchoolPatch carries master-data fields for the patch-school command.
// Zero-valued fields are omitted so the server keeps its current values.
type SchoolPatch struct {
	Bezeichnung1 string `json:"bezeichnung1,omitempty"`
	Bezeichnung2 string `json:"bezeichnung2,omitempty"`
	Bezeichnung3 string `json:"bezeichnung3,omitempty"`
	Strassenname string `json:"strassenname,omitempty"`
	Hausnummer   string `json:"hausnummer,omitempty"`
	PLZ          string `json:"plz,omitempty"`
	Ort          string `json:"ort,omitempty"`
	Telefon      string `json:"telefon,omitempty"`
	Fax          string `json:"fax,omitempty"`
	Email        string `json:"email,omitempty"`
	WebAdresse   string `json:"webAdresse,omitempty"`
}

// Jahrgang is one grade-level entry of the server directory.
type Jahrgang struct {
	ID      int64  `json:"id"`
	Kuerzel string `json:"kuerzel"`
}

// Lehrer is one staff roster entry.
type Lehrer struct {
	ID      int64  `json:"id"`
	Kuerzel string `json:"kuerzel"`
}

// KlasseCreate is the class creation payload. The organizational id
// fields are pointers so school-form variants can omit the ones the
// server must default.
type KlasseCreate struct {
	IDSchuljahresabschnitt int64  `json:"idSchuljahresabschnitt"`
	Kuerzel                string `json:"kuerzel"`
	IDJahrgang             int64  `json:"idJahrgang"`
	Parallelitaet          string `json:"parallelitaet"`
	Sortierung             int    `json:"sortierung"`
	Beschreibung           string `json:"beschreibung"`

	IDAllgemeinbildendOrganisationsform *int64 `json:"idAllgemeinbildendOrganisationsform,omitempty"`
	IDBerufsbildendOrganisationsform    *int64 `json:"idBerufsbildendOrganisationsform,omitempty"`
	IDKlassenart                        int64  `json:"idKlassenart"`
	IDSchulgliederung                   *int64 `json:"idSchulgliederung,omitempty"`
}

// Alive probes the server's liveness endpoint.
func (c *Client) Alive(ctx context.Context) error {
	url := c.baseURL + "/status/alive"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.SvwsCreateRequestErrFmt, err)
	}
	req.SetBasicAuth(c.username, c.password)
	resp, err := c.readClient.Do(req)
	if err != nil {
		return fmt.Errorf(messages.SvwsRequestFailedFmt, http.MethodGet, "/status/alive", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	return nil
}

// Stammdaten fetches the school master data.
func (c *Client) Stammdaten(ctx context.Context) (*Stammdaten, error) {
	var out Stammdaten
	if err := c.do(ctx, c.readClient, http.MethodGet, c.schemaPath("/schule/stammdaten"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchStammdaten updates school master-data fields.
func (c *Client) PatchStammdaten(ctx context.Context, patch SchoolPatch) error {
	return c.do(ctx, c.patchClient, http.MethodPatch, c.schemaPath("/schule/stammdaten"), patch, nil)
}

// Jahrgaenge fetches the grade-level directory.
func (c *Client) Jahrgaenge(ctx context.Context) ([]Jahrgang, error) {
	var out []Jahrgang
	if err := c.do(ctx, c.readClient, http.MethodGet, c.schemaPath("/jahrgaenge"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Lehrer fetches the staff roster.
func (c *Client) Lehrer(ctx context.Context) ([]Lehrer, error) {
	var out []Lehrer
	if err := c.do(ctx, c.readClient, http.MethodGet, c.schemaPath("/lehrer"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateKlasse creates one class and returns the server-assigned id.
func (c *Client) CreateKlasse(ctx context.Context, klasse KlasseCreate) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	path := c.schemaPath("/klassen/create")
	if err := c.do(ctx, c.writeClient, http.MethodPost, path, klasse, &out); err != nil {
		return 0, err
	}
	if out.ID == 0 {
		return 0, fmt.Errorf(messages.SvwsNoCreatedIDFmt, path)
	}
	return out.ID, nil
}

// PatchKlassenleitungen sets the leader pair of a class.
func (c *Client) PatchKlassenleitungen(ctx context.Context, klasseID int64, staffIDs []int64) error {
	payload := struct {
		KlassenLeitungen []int64 `json:"klassenLeitungen"`
	}{KlassenLeitungen: staffIDs}
	path := c.schemaPath(fmt.Sprintf("/klassen/%d", klasseID))
	return c.do(ctx, c.writeClient, http.MethodPatch, path, payload, nil)
}

// schemaPath prefixes an endpoint with the schema route.
func (c *Client) schemaPath(endpoint string) string {
	return fmt.Sprintf("/db/%s%s", c.schema, endpoint)
}
