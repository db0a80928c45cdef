package landscape

import "context"

// The seed dataset describes the phases of a Dutch housing-development
// project, the roles active in each phase, and an initial set of software
// categories. It is the baseline content of a fresh landscape database.

type seedNode struct {
	label string
	props map[string]interface{}
}

type seedRelation struct {
	startLabel, startName string
	endLabel, endName     string
	relType               string
}

var seedNodes = []seedNode{
	{"fase", map[string]interface{}{"name": "Initiatief", "description": "Wat gebeurt er? Eerste idee of behoefte aan woningen (door gemeente, ontwikkelaar, corporatie of particulier). Globale verkenning van de locatie, haalbaarheid en doelgroepen. Belangrijke activiteiten: Locatieonderzoek (bestemmingsplan, eigendom, omgevingsfactoren). Marktanalyse en indicatie van kosten/baten. Globaal programma van eisen (hoeveel woningen, type, duurzaamheid)."}},
	{"fase", map[string]interface{}{"name": "Haalbaarheid", "description": "Wat gebeurt er? Uitwerken van een eerste ontwerpconcept en kostenraming. Toetsen of het plan financieel, technisch, juridisch en maatschappelijk haalbaar is. Belangrijke activiteiten: Stedenbouwkundig schetsontwerp. Overleg met gemeente en andere stakeholders. Eventuele participatie met omwonenden. Risicoanalyse. Opstellen businesscase."}},
	{"fase", map[string]interface{}{"name": "Ontwerp", "description": "Wat gebeurt er? Van schetsontwerp naar definitief ontwerp. Belangrijke activiteiten: Schetsontwerp (SO) ruimtelijke opzet, massa en situering. Voorlopig Ontwerp (VO): materialen, plattegronden, gevels. Definitief Ontwerp (DO): alle details, constructies en installaties uitgewerkt. Duurzaamheids- en energieconcept."}},
	{"fase", map[string]interface{}{"name": "Vergunning", "description": "Wat gebeurt er? Aanvragen van de Omgevingsvergunning (bouw, milieu, eventueel sloop). Plan wordt formeel getoetst aan het bestemmingsplan, bouwbesluit, welstand. Belangrijke activiteiten: Indienen complete aanvraag bij de gemeente. Eventuele bezwaarprocedures door derden. Definitieve goedkeuring verkrijgen."}},
	{"fase", map[string]interface{}{"name": "Engineering", "description": "Wat gebeurt er? Selecteren van aannemer (aanbesteding of onderhandse gunning). Opstellen contracten. Belangrijke activiteiten: Werkvoorbereiding door de aannemer (uitvoeringsplannen, inkoop materialen). Eventueel bouwrijp maken van de grond (nutsvoorzieningen, infrastructuur)."}},
	{"fase", map[string]interface{}{"name": "Uitvoering", "description": "Wat gebeurt er? Fysieke bouw van de woningen. Belangrijke activiteiten: Grondwerk, fundering, ruwbouw, afbouw. Kwaliteitscontroles en bouwtoezicht. Eventuele aanpassingen tijdens de bouw."}},
	{"fase", map[string]interface{}{"name": "Oplevering", "description": "Wat gebeurt er? Officiële overdracht van woningen aan kopers/huurders. Belangrijke activiteiten: Eindinspectie en opleverrapport. Verhelpen van opleverpunten. Overdracht documentatie (garanties, handleidingen)."}},
	{"fase", map[string]interface{}{"name": "Beheer", "description": "Wat gebeurt er? Ondersteuning bewoners bij gebreken. Eventuele garantieclaims. Belangrijke activiteiten: Nazorgperiode (meestal 3-6 maanden of 1 jaar). Overdracht aan VvE of beheerorganisatie."}},

	{"role", map[string]interface{}{"name": "Projectontwikkelaar", "description": "Coördineert en ontwikkelt het bouwproject van initiatief tot oplevering."}},
	{"role", map[string]interface{}{"name": "Gemeente", "description": "Toezichthouder en vergunningverlener namens de overheid."}},
	{"role", map[string]interface{}{"name": "Stedenbouwkundige", "description": "Ontwerpt de ruimtelijke opzet van een gebied, inclusief infrastructuur en inrichting."}},
	{"role", map[string]interface{}{"name": "Architect", "description": "Maakt het ontwerp van de woning en de uitstraling ervan."}},
	{"role", map[string]interface{}{"name": "Constructeur", "description": "Zorgt dat het ontwerp technisch veilig en uitvoerbaar is."}},
	{"role", map[string]interface{}{"name": "Installateur", "description": "Ontwerpt technische installaties zoals verwarming, ventilatie en elektra."}},
	{"role", map[string]interface{}{"name": "Inkoopmanager", "description": "Regelt de inkoop van materialen en diensten voor het project."}},
	{"role", map[string]interface{}{"name": "Omgevingsmanager", "description": "Beheert communicatie en belangen van omwonenden en stakeholders."}},
	{"role", map[string]interface{}{"name": "Aannemer", "description": "Voert de bouw uit en draagt zorg voor het bouwproces."}},
	{"role", map[string]interface{}{"name": "Werkvoorbereider", "description": "Bereidt de uitvoering voor, regelt planning, materialen en logistiek."}},
	{"role", map[string]interface{}{"name": "Uitvoerder", "description": "Toezicht op de dagelijkse gang van zaken op de bouwplaats."}},
	{"role", map[string]interface{}{"name": "Veiligheidscoördinator", "description": "Zorgt voor naleving van veiligheids-, gezondheids- en milieuregels."}},
	{"role", map[string]interface{}{"name": "Kwaliteitsinspecteur", "description": "Controleert of het werk voldoet aan de afgesproken kwaliteitseisen."}},
	{"role", map[string]interface{}{"name": "Opzichter", "description": "Houdt toezicht namens opdrachtgever op het bouwproces."}},
	{"role", map[string]interface{}{"name": "Beheerder", "description": "Beheert het onderhoud en de gemeenschappelijke zaken van een wooncomplex."}},
	{"role", map[string]interface{}{"name": "Bewoner", "description": "Eindgebruiker van de woning."}},
	{"role", map[string]interface{}{"name": "Leverancier", "description": "Levert materialen en producten die nodig zijn voor de bouw."}},

	{"category", map[string]interface{}{"name": "Communicatie"}},
	{"category", map[string]interface{}{"name": "Ontwerp"}},
	{"category", map[string]interface{}{"name": "Engineering"}},
	{"category", map[string]interface{}{"name": "BIM"}},
	{"category", map[string]interface{}{"name": "Planning"}},
	{"category", map[string]interface{}{"name": "Calculatie"}},
	{"category", map[string]interface{}{"name": "Kostenbeheer"}},
	{"category", map[string]interface{}{"name": "Vergunningen"}},
	{"category", map[string]interface{}{"name": "GIS"}},
	{"category", map[string]interface{}{"name": "Logistiek"}},
	{"category", map[string]interface{}{"name": "Inkoop"}},
	{"category", map[string]interface{}{"name": "Kwaliteit"}},
	{"category", map[string]interface{}{"name": "Oplevering"}},
	{"category", map[string]interface{}{"name": "Onderhoud"}},
	{"category", map[string]interface{}{"name": "Beheer"}},
}

var seedRelations = []seedRelation{
	{"fase", "Initiatief", "fase", "Haalbaarheid", "NEXT"},
	{"fase", "Haalbaarheid", "fase", "Ontwerp", "NEXT"},
	{"fase", "Ontwerp", "fase", "Vergunning", "NEXT"},
	{"fase", "Vergunning", "fase", "Engineering", "NEXT"},
	{"fase", "Engineering", "fase", "Uitvoering", "NEXT"},
	{"fase", "Uitvoering", "fase", "Oplevering", "NEXT"},
	{"fase", "Oplevering", "fase", "Beheer", "NEXT"},

	{"role", "Projectontwikkelaar", "fase", "Initiatief", "WORKS_IN"},
	{"role", "Projectontwikkelaar", "fase", "Haalbaarheid", "WORKS_IN"},
	{"role", "Architect", "fase", "Haalbaarheid", "WORKS_IN"},
	{"role", "Architect", "fase", "Ontwerp", "WORKS_IN"},
	{"role", "Constructeur", "fase", "Ontwerp", "WORKS_IN"},
	{"role", "Installateur", "fase", "Ontwerp", "WORKS_IN"},
	{"role", "Projectontwikkelaar", "fase", "Ontwerp", "WORKS_IN"},
	{"role", "Gemeente", "fase", "Ontwerp", "WORKS_IN"},
	{"role", "Projectontwikkelaar", "fase", "Vergunning", "WORKS_IN"},
	{"role", "Gemeente", "fase", "Vergunning", "WORKS_IN"},
	{"role", "Architect", "fase", "Vergunning", "WORKS_IN"},
	{"role", "Aannemer", "fase", "Engineering", "WORKS_IN"},
	{"role", "Werkvoorbereider", "fase", "Engineering", "WORKS_IN"},
	{"role", "Inkoopmanager", "fase", "Engineering", "WORKS_IN"},
	{"role", "Omgevingsmanager", "fase", "Engineering", "WORKS_IN"},
	{"role", "Projectontwikkelaar", "fase", "Engineering", "WORKS_IN"},
	{"role", "Leverancier", "fase", "Engineering", "WORKS_IN"},
	{"role", "Architect", "fase", "Engineering", "WORKS_IN"},
	{"role", "Constructeur", "fase", "Engineering", "WORKS_IN"},
	{"role", "Installateur", "fase", "Engineering", "WORKS_IN"},
	{"role", "Aannemer", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Uitvoerder", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Werkvoorbereider", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Veiligheidscoördinator", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Kwaliteitsinspecteur", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Opzichter", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Installateur", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Leverancier", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Architect", "fase", "Uitvoering", "WORKS_IN"},
	{"role", "Projectontwikkelaar", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Bewoner", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Opzichter", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Beheerder", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Kwaliteitsinspecteur", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Aannemer", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Uitvoerder", "fase", "Oplevering", "WORKS_IN"},
	{"role", "Beheerder", "fase", "Beheer", "WORKS_IN"},
	{"role", "Leverancier", "fase", "Beheer", "WORKS_IN"},
	{"role", "Bewoner", "fase", "Beheer", "WORKS_IN"},
}

// Seed loads the baseline dataset through the dynamic CRUD layer. Every node
// goes through UpsertNode and every relationship through the idempotent
// CreateRelationship merge, so seeding an already-seeded database converges
// instead of duplicating.
//
// Seed does not clear the database first; combine with ClearAll when a clean
// slate is wanted.
func Seed(ctx context.Context, crud *GraphCRUD) error {
	for _, node := range seedNodes {
		if _, err := crud.UpsertNode(ctx, node.label, node.props); err != nil {
			return err
		}
	}
	for _, rel := range seedRelations {
		if _, _, err := crud.CreateRelationship(ctx, rel.startLabel, rel.startName, rel.endLabel, rel.endName, rel.relType, nil); err != nil {
			return err
		}
	}
	return nil
}
