package seed

import (
	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/internal/integrations/calendarapi"
)

// Clients демо-справочник клиентов
func Clients() []domain.Client {
	return []domain.Client{
		{ID: "1", Name: "Sriram Krishnan", Phone: "+91 98765 43210"},
		{ID: "2", Name: "Shilpa Sharma", Phone: "+91 87654 32109"},
		{ID: "3", Name: "Rahul Gupta", Phone: "+91 76543 21098"},
		{ID: "4", Name: "Priya Patel", Phone: "+91 65432 10987"},
		{ID: "5", Name: "Arjun Singh", Phone: "+91 54321 09876"},
		{ID: "6", Name: "Kavya Reddy", Phone: "+91 43210 98765"},
		{ID: "7", Name: "Vikram Mehta", Phone: "+91 32109 87654"},
		{ID: "8", Name: "Ananya Iyer", Phone: "+91 21098 76543"},
		{ID: "9", Name: "Rohan Joshi", Phone: "+91 10987 65432"},
		{ID: "10", Name: "Sneha Agarwal", Phone: "+91 09876 54321"},
		{ID: "11", Name: "Karthik Nair", Phone: "+91 98765 43211"},
		{ID: "12", Name: "Deepika Rao", Phone: "+91 87654 32110"},
		{ID: "13", Name: "Aditya Kumar", Phone: "+91 76543 21099"},
		{ID: "14", Name: "Meera Bansal", Phone: "+91 65432 10988"},
		{ID: "15", Name: "Suresh Pillai", Phone: "+91 54321 09877"},
		{ID: "16", Name: "Ritu Malhotra", Phone: "+91 43210 98766"},
		{ID: "17", Name: "Nikhil Saxena", Phone: "+91 32109 87655"},
		{ID: "18", Name: "Pooja Verma", Phone: "+91 21098 76544"},
		{ID: "19", Name: "Amit Chopra", Phone: "+91 10987 65433"},
		{ID: "20", Name: "Divya Sinha", Phone: "+91 09876 54322"},
	}
}

// SampleBookings демо-бронирования: один onboarding и два повторяющихся follow-up
func SampleBookings() []calendarapi.CreateBookingRequest {
	return []calendarapi.CreateBookingRequest{
		{ClientID: "1", CallType: string(domain.CallKindOnboarding), Date: "2024-01-29", StartTime: "11:10"},
		{ClientID: "2", CallType: string(domain.CallKindFollowUp), Date: "2024-01-29", StartTime: "15:50"},
		{ClientID: "3", CallType: string(domain.CallKindFollowUp), Date: "2024-01-30", StartTime: "14:30"},
	}
}
