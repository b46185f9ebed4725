// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations, including the observation and attachment children.
package orderrepo

import (
	"time"

	"verification/internal/adapters/out/postgres/observationrepo"
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The client and company value objects are flattened into columns so the
// read-side queries can project them without joins.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Version   int64
	OrderCode string `gorm:"uniqueIndex"`

	ClientName           string
	ClientDocumentType   string
	ClientDocumentNumber string
	ClientPhone          string
	ClientEmail          *string
	Street               string
	District             string
	Province             string
	Department           string
	Reference            string
	IsTenant             bool
	LandlordName         *string
	LandlordPhone        *string

	CompanyLegalName   string
	CompanyRuc         string
	CompanyContactName string
	CompanyPhone       string
	CompanyEmail       *string

	Status     string `gorm:"index"`
	VerifierID *int64 `gorm:"index"`
	VisitDate  *time.Time
	VisitTime  *string
	ReportID   *int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DocumentDTO represents one file attached to an order. The storage key is
// generated by the domain at attach time and serves as the primary key.
type DocumentDTO struct {
	StorageKey string `gorm:"primaryKey"`
	OrderID    int64  `gorm:"index"`
	FileName   string
	URL        string
	AttachedAt time.Time
}

// TableName specifies the database table name for order attachments.
func (DocumentDTO) TableName() string {
	return "order_documents"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	client := aggregate.Client()
	company := aggregate.Company()

	dto := OrderDTO{
		ID:        aggregate.ID().Value(),
		Version:   aggregate.Version(),
		OrderCode: aggregate.OrderCode().Value(),

		ClientName:           client.Name(),
		ClientDocumentType:   client.Document().Type().String(),
		ClientDocumentNumber: client.Document().Value(),
		ClientPhone:          client.Phone().Value(),
		Street:               client.Address().Street(),
		District:             client.Address().District(),
		Province:             client.Address().Province(),
		Department:           client.Address().Department(),
		Reference:            client.Address().Reference(),
		IsTenant:             client.IsTenant(),

		CompanyLegalName:   company.LegalName(),
		CompanyRuc:         company.Ruc().Value(),
		CompanyContactName: company.ContactName(),
		CompanyPhone:       company.Phone().Value(),

		Status: aggregate.Status().String(),
	}

	if email := client.Email(); email != nil {
		value := email.Value()
		dto.ClientEmail = &value
	}
	if landlord := client.Landlord(); landlord != nil {
		name := landlord.Name()
		phone := landlord.Phone().Value()
		dto.LandlordName = &name
		dto.LandlordPhone = &phone
	}
	if email := company.Email(); email != nil {
		value := email.Value()
		dto.CompanyEmail = &value
	}

	if verifierID := aggregate.Verifier(); verifierID != nil {
		value := verifierID.Value()
		dto.VerifierID = &value
	}
	if visitDate := aggregate.VisitDate(); visitDate != nil {
		value := visitDate.Value()
		dto.VisitDate = &value
	}
	if visitTime := aggregate.VisitTime(); visitTime != nil {
		value := visitTime.Value()
		dto.VisitTime = &value
	}
	if reportID := aggregate.Report(); reportID != nil {
		value := reportID.Value()
		dto.ReportID = &value
	}

	return dto
}

// documentsFromDomain converts the order's attachments to their database rows.
func documentsFromDomain(aggregate *order.Order) []DocumentDTO {
	documents := aggregate.Documents()
	dtos := make([]DocumentDTO, 0, len(documents))
	for _, doc := range documents {
		dtos = append(dtos, DocumentDTO{
			StorageKey: doc.StorageKey(),
			OrderID:    aggregate.ID().Value(),
			FileName:   doc.FileName(),
			URL:        doc.URL(),
			AttachedAt: doc.AttachedAt(),
		})
	}
	return dtos
}

// clientFromDTO reconstructs the client value object from the order row.
func clientFromDTO(dto OrderDTO) (order.Client, error) {
	documentType, err := kernel.DocumentTypeFromString(dto.ClientDocumentType)
	if err != nil {
		return order.Client{}, err
	}

	document, err := kernel.NewDocumentNumber(documentType, dto.ClientDocumentNumber)
	if err != nil {
		return order.Client{}, err
	}

	phone, err := kernel.NewPhoneNumber(dto.ClientPhone)
	if err != nil {
		return order.Client{}, err
	}

	var email *kernel.Email
	if dto.ClientEmail != nil {
		value, emailErr := kernel.NewEmail(*dto.ClientEmail)
		if emailErr != nil {
			return order.Client{}, emailErr
		}
		email = &value
	}

	address, err := kernel.NewAddress(dto.Street, dto.District, dto.Province, dto.Department, dto.Reference)
	if err != nil {
		return order.Client{}, err
	}

	var landlordName, landlordPhone string
	if dto.LandlordName != nil {
		landlordName = *dto.LandlordName
	}
	if dto.LandlordPhone != nil {
		landlordPhone = *dto.LandlordPhone
	}

	return order.NewClient(dto.ClientName, document, phone, email, address,
		dto.IsTenant, landlordName, landlordPhone)
}

// companyFromDTO reconstructs the company value object from the order row.
func companyFromDTO(dto OrderDTO) (order.Company, error) {
	ruc, err := kernel.NewRuc(dto.CompanyRuc)
	if err != nil {
		return order.Company{}, err
	}

	phone, err := kernel.NewPhoneNumber(dto.CompanyPhone)
	if err != nil {
		return order.Company{}, err
	}

	var email *kernel.Email
	if dto.CompanyEmail != nil {
		value, emailErr := kernel.NewEmail(*dto.CompanyEmail)
		if emailErr != nil {
			return order.Company{}, emailErr
		}
		email = &value
	}

	return order.NewCompany(dto.CompanyLegalName, ruc, dto.CompanyContactName, phone, email)
}

// toDomain converts database rows to an order domain aggregate, including
// its observations and attachments, using RestoreOrder.
func toDomain(dto OrderDTO, obsDTOs []observationrepo.ObservationDTO, docDTOs []DocumentDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderCode, err := kernel.NewOrderCode(dto.OrderCode)
	if err != nil {
		return nil, err
	}

	client, err := clientFromDTO(dto)
	if err != nil {
		return nil, err
	}

	company, err := companyFromDTO(dto)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var verifierID *kernel.ID
	if dto.VerifierID != nil {
		value, idErr := kernel.NewID(*dto.VerifierID)
		if idErr != nil {
			return nil, idErr
		}
		verifierID = &value
	}

	var visitDate *kernel.VisitDate
	if dto.VisitDate != nil {
		value, dateErr := kernel.RestoreVisitDate(*dto.VisitDate)
		if dateErr != nil {
			return nil, dateErr
		}
		visitDate = &value
	}

	var visitTime *kernel.VisitTime
	if dto.VisitTime != nil {
		value, timeErr := kernel.NewVisitTime(*dto.VisitTime)
		if timeErr != nil {
			return nil, timeErr
		}
		visitTime = &value
	}

	var reportID *kernel.ID
	if dto.ReportID != nil {
		value, idErr := kernel.NewID(*dto.ReportID)
		if idErr != nil {
			return nil, idErr
		}
		reportID = &value
	}

	observations := make([]*observation.Observation, 0, len(obsDTOs))
	for _, obsDTO := range obsDTOs {
		obs, obsErr := observationrepo.ToDomain(obsDTO)
		if obsErr != nil {
			return nil, obsErr
		}
		observations = append(observations, obs)
	}

	documents := make([]order.AttachedDocument, 0, len(docDTOs))
	for _, docDTO := range docDTOs {
		doc, docErr := order.RestoreAttachedDocument(
			docDTO.StorageKey, docDTO.FileName, docDTO.URL, docDTO.AttachedAt)
		if docErr != nil {
			return nil, docErr
		}
		documents = append(documents, doc)
	}

	return order.RestoreOrder(id, dto.Version, orderCode, client, company, status,
		verifierID, visitDate, visitTime, reportID, observations, documents)
}
