package devis

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NouvelleReference génère une référence de devis au format historique
// DEV-AAAAMMJJ-NNN, où NNN est un suffixe aléatoire sur trois chiffres.
// Le format n'est pas unique en soi : l'unicité est garantie par la
// contrainte UNIQUE de la colonne reference, avec réessai à l'insertion.
func NouvelleReference(date time.Time) string {
	return fmt.Sprintf("DEV-%s-%03d", date.Format("20060102"), rand.IntN(1000))
}
